package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/selene/internal/compiler"
	"github.com/grindlemire/selene/internal/debug"
)

// runGenerate implements the generate subcommand.
// It compiles .selene files and writes an ES module or a Go file next to
// each one.
func runGenerate(args []string, stdout, stderr io.Writer) error {
	cfg, paths, err := parseArgs(args)
	if err != nil {
		return err
	}

	files, err := findFiles(paths)
	if err != nil {
		return err
	}

	if cfg.verbose {
		fmt.Fprintf(stdout, "Found %d %s file(s)\n", len(files), templateExt)
	}

	outputs, err := planOutputs(cfg, files)
	if err != nil {
		return err
	}

	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(cfg.jobs)
	for i, inputPath := range files {
		i, inputPath := i, inputPath
		g.Go(func() error {
			errs[i] = generateFile(cfg, inputPath, outputs[i])
			return nil
		})
	}
	_ = g.Wait()

	// Report in input order so output does not depend on scheduling.
	var errorCount int
	for i, inputPath := range files {
		if errs[i] != nil {
			fmt.Fprintf(stderr, "%s: %v\n", inputPath, errs[i])
			errorCount++
			continue
		}
		if cfg.verbose {
			fmt.Fprintf(stdout, "Processing %s -> %s\n", inputPath, outputs[i])
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if cfg.verbose {
		fmt.Fprintf(stdout, "Successfully generated %d file(s)\n", len(files))
	}

	return nil
}

// planOutputs returns the output path for each input. It fails before
// anything is written when two inputs would write the same file or, for the
// Go target, declare the same constant in one package.
func planOutputs(cfg config, files []string) ([]string, error) {
	outputs := make([]string, len(files))
	writers := make(map[string]string)
	idents := make(map[string]string)

	for i, inputPath := range files {
		out := compiler.JSOutputName(inputPath)
		if cfg.target == "go" {
			out = compiler.GoOutputName(inputPath)
		}
		if prev, ok := writers[out]; ok {
			return nil, fmt.Errorf("%s and %s both write %s", prev, inputPath, out)
		}
		writers[out] = inputPath
		outputs[i] = out

		if cfg.target == "go" {
			ident := compiler.TemplateIdent(inputPath)
			key := filepath.Join(filepath.Dir(inputPath), ident)
			if prev, ok := idents[key]; ok {
				return nil, fmt.Errorf("%s and %s both generate %s", prev, inputPath, ident)
			}
			idents[key] = inputPath
		}
	}
	return outputs, nil
}

// generateFile compiles one template and writes it to outputPath.
func generateFile(cfg config, inputPath, outputPath string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	filename := filepath.Base(inputPath)
	opts := cfg.compileOptions()
	code := compiler.Compile(string(source), opts...)

	var output []byte
	switch cfg.target {
	case "go":
		pkg := cfg.pkg
		if pkg == "" {
			pkg = compiler.PackageName(filepath.Dir(absPath(inputPath)))
		}
		gen := compiler.NewGoFileGenerator()
		gen.Register = cfg.register
		output, err = gen.Generate(pkg, []compiler.Template{{SourceFile: filename, Code: code}})
		if err != nil {
			return fmt.Errorf("generating code: %w", err)
		}
	default:
		output = compiler.GenerateJSModule(filename, code, cfg.runtime, opts...)
	}

	debug.Log("generate: %s -> %s (%d bytes)", inputPath, outputPath, len(output))
	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// absPath resolves p so that "." and relative paths yield a real directory
// name for package naming.
func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
