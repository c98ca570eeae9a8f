package selene

import "github.com/grindlemire/selene/internal/compiler"

// CompileOption configures the names used in compiled output.
type CompileOption = compiler.Option

// Warning is a positioned, non-fatal diagnostic about a template.
type Warning = compiler.Warning

// CompileTemplate compiles a template into the source text of a
// JavaScript render function, using the default factory "h" and fragment
// "Fragment". It never fails: malformed markup degrades to text.
//
//	CompileTemplate(`<p>Hi</p>`) // () => h("p", {}, "Hi")
func CompileTemplate(source string) string {
	return compiler.Compile(source)
}

// Compile is CompileTemplate with options.
func Compile(source string, opts ...CompileOption) string {
	return compiler.Compile(source, opts...)
}

// WithFactory sets the element factory name used in compiled output.
func WithFactory(name string) CompileOption { return compiler.WithFactory(name) }

// WithFragment sets the fragment marker name used in compiled output.
func WithFragment(name string) CompileOption { return compiler.WithFragment(name) }

// Check parses source and returns the warnings found while doing so.
// filename is only used to label positions.
func Check(filename, source string) []*Warning {
	p := compiler.NewParser(filename, source)
	p.Parse()
	return p.Warnings().Warnings()
}
