package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/selene/internal/compiler"
	"github.com/grindlemire/selene/internal/debug"
)

// runCompile implements the compile subcommand.
// It compiles a single template, read from a file or stdin, and prints
// the render function.
func runCompile(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, paths, err := parseArgs(args)
	if err != nil {
		return err
	}
	if len(paths) > 1 {
		return fmt.Errorf("compile takes at most one file, got %d", len(paths))
	}

	var source []byte
	if len(paths) == 0 || paths[0] == "-" {
		source, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		source, err = os.ReadFile(paths[0])
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
	}

	debug.Log("compile: %d bytes", len(source))
	code := compiler.Compile(string(source), cfg.compileOptions()...)
	_, err = fmt.Fprintln(stdout, code)
	return err
}
