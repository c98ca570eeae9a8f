// Package main provides the CLI tool for the selene template compiler.
//
// Usage:
//
//	selene compile [file]        Print the render function for one template
//	selene generate [path...]    Generate JS modules or Go files from .selene files
//	selene check [path...]       Report template warnings without generating
//	selene help                  Show help
//
// Examples:
//
//	selene generate ./...              Recursively find and compile all .selene files
//	selene generate --target=go ./ui   Embed templates from a directory as Go constants
//	selene check --strict page.selene  Fail on any warning
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/selene/internal/debug"
)

const version = "0.1.0"

const usage = `selene - template compiler for selene render functions

Usage:
  selene <command> [options] [path...]

Commands:
  compile     Compile one template (file or stdin) and print the render function
  generate    Generate output files from .selene files
  check       Report warnings for .selene files without generating
  version     Print version information
  help        Show this help message

Options:
  -v, --verbose        Verbose output
  --target=js|go       Output kind for generate (default js)
  --package=<name>     Go package name for --target=go (default: directory name)
  --runtime=<path>     Module the JS output imports h and Fragment from (default "selene")
  --factory=<name>     Element factory name (default h)
  --fragment=<name>    Fragment marker name (default Fragment)
  --register           Go target: register templates with the runtime from init
  --strict             Treat warnings as errors in check
  -j <n>, --jobs=<n>   Number of files processed in parallel

Environment:
  SELENE_DEBUG         Write debug logs to this file

Examples:
  selene compile counter.selene          Print the compiled function
  echo '<p>Hi</p>' | selene compile      Compile from stdin
  selene generate ./...                  Recursively process all .selene files
  selene generate --target=go ./views    Write views/*_selene.go files
  selene generate --target=go --register ./views
                                         Also register them for selene.Lookup
  selene check --strict ./...            Fail on any template warning
`

func main() {
	code := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	debug.Close()
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stdout, usage)
		return 1
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "compile":
		err = runCompile(args, stdin, stdout)
	case "generate":
		err = runGenerate(args, stdout, stderr)
	case "check":
		err = runCheck(args, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "selene version %s\n", version)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(stdout, usage)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
