package compiler

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"
)

// Template is one compiled template destined for a generated file.
type Template struct {
	SourceFile string // template file name, used for the identifier and header
	Code       string // compiled render function source
}

// GoFileGenerator writes compiled templates as exported string constants
// in a Go source file, so the render functions can be embedded in a Go
// binary and served to a JavaScript runtime.
type GoFileGenerator struct {
	buf bytes.Buffer

	// Register adds an init function that registers every template with
	// the runtime package, so it can be looked up by name at run time.
	Register bool

	// RuntimeImport is the import path of the runtime package, which must
	// be named selene. Defaults to DefaultRuntimeImport.
	RuntimeImport string

	// SkipImports uses format.Source instead of imports.Process (faster for tests)
	SkipImports bool
}

// DefaultRuntimeImport is the Go import path of the selene runtime.
const DefaultRuntimeImport = "github.com/grindlemire/selene"

// NewGoFileGenerator creates a new Go file generator.
func NewGoFileGenerator() *GoFileGenerator {
	return &GoFileGenerator{RuntimeImport: DefaultRuntimeImport}
}

// Generate produces a formatted Go file in package pkg declaring one
// constant per template, in the order given.
func (g *GoFileGenerator) Generate(pkg string, templates []Template) ([]byte, error) {
	if !isIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	g.buf.Reset()

	g.buf.WriteString("// Code generated by selene generate. DO NOT EDIT.\n")
	for _, t := range templates {
		fmt.Fprintf(&g.buf, "// Source: %s\n", t.SourceFile)
	}
	fmt.Fprintf(&g.buf, "\npackage %s\n", pkg)

	// imports.Process drops the import when nothing registers.
	if g.Register || !g.SkipImports {
		runtime := g.RuntimeImport
		if runtime == "" {
			runtime = DefaultRuntimeImport
		}
		fmt.Fprintf(&g.buf, "\nimport %s\n", strconv.Quote(runtime))
	}

	seen := make(map[string]string)
	idents := make([]string, 0, len(templates))
	for _, t := range templates {
		name := TemplateIdent(t.SourceFile)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%s and %s both generate %s", prev, t.SourceFile, name)
		}
		seen[name] = t.SourceFile
		idents = append(idents, name)

		fmt.Fprintf(&g.buf, "\n// %s is the compiled render function for %s.\n", name, filepath.Base(t.SourceFile))
		fmt.Fprintf(&g.buf, "const %s = %s\n", name, strconv.Quote(t.Code))
	}

	if g.Register {
		g.buf.WriteString("\nfunc init() {\n")
		for i, t := range templates {
			fmt.Fprintf(&g.buf, "\tselene.Register(%s, %s)\n", strconv.Quote(TemplateName(t.SourceFile)), idents[i])
		}
		g.buf.WriteString("}\n")
	}

	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}
	filename := "templates_selene.go"
	if len(templates) == 1 {
		filename = GoOutputName(templates[0].SourceFile)
	}
	return imports.Process(filename, g.buf.Bytes(), nil)
}

// GenerateGoFile is a convenience wrapper for a single template.
func GenerateGoFile(pkg, sourceFile, code string) ([]byte, error) {
	return NewGoFileGenerator().Generate(pkg, []Template{{SourceFile: sourceFile, Code: code}})
}

// GenerateJSModule wraps compiled code in an ES module that imports the
// factory and fragment bindings from runtime and exports the render
// function as default.
func GenerateJSModule(sourceFile, code, runtime string, opts ...Option) []byte {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by selene generate. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "// Source: %s\n\n", filepath.Base(sourceFile))
	if runtime != "" {
		fmt.Fprintf(&buf, "import { %s, %s } from %s;\n\n", o.factory, o.fragment, JSString(runtime))
	}
	fmt.Fprintf(&buf, "export default %s;\n", code)
	return buf.Bytes()
}

// TemplateName is the name a template is registered under: its file name
// without the extension.
//
//	views/my-app.selene -> my-app
func TemplateName(sourceFile string) string {
	return strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
}

// TemplateIdent derives the exported constant name for a template file.
// Examples:
//
//	counter.selene    -> CounterTemplate
//	my-app.selene     -> MyAppTemplate
//	views/404.selene  -> T404Template
//	日本.selene        -> T日本Template
//
// Names that would not start with an upper-case letter get a T prefix so
// the constant is always exported.
func TemplateIdent(sourceFile string) string {
	parts := strings.FieldsFunc(TemplateName(sourceFile), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(capitalize(part))
	}
	name := sb.String()
	if first, _ := utf8.DecodeRuneInString(name); name != "" && !unicode.IsUpper(first) {
		name = "T" + name
	}
	return name + "Template"
}

// JSOutputName converts a template filename to its ES module filename.
//
//	header.selene -> header.selene.js
func JSOutputName(inputPath string) string {
	return inputPath + ".js"
}

// GoOutputName converts a template filename to its Go filename.
//
//	header.selene -> header_selene.go
//	my-app.selene -> my_app_selene.go
func GoOutputName(inputPath string) string {
	dir := filepath.Dir(inputPath)
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	name = strings.ReplaceAll(name, "-", "_")
	return filepath.Join(dir, name+"_selene.go")
}

// PackageName derives a Go package name from a directory path.
func PackageName(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	var sb strings.Builder
	for _, r := range strings.ToLower(base) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		}
	}
	name := sb.String()
	if !isIdentifier(name) {
		return "templates"
	}
	return name
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !unicode.IsLetter(r) && r != '_' && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}
