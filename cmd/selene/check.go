package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/selene/internal/compiler"
)

// runCheck implements the check subcommand.
// It parses .selene files and prints the warnings found, without
// generating anything. With --strict a file with warnings is an error.
func runCheck(args []string, stdout, stderr io.Writer) error {
	cfg, paths, err := parseArgs(args)
	if err != nil {
		return err
	}

	files, err := findFiles(paths)
	if err != nil {
		return err
	}

	if cfg.verbose {
		fmt.Fprintf(stdout, "Checking %d %s file(s)\n", len(files), templateExt)
	}

	results := make([][]*compiler.Warning, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(cfg.jobs)
	for i, inputPath := range files {
		i, inputPath := i, inputPath
		g.Go(func() error {
			results[i], errs[i] = checkFile(inputPath)
			return nil
		})
	}
	_ = g.Wait()

	var errorCount, warningCount int
	for i, inputPath := range files {
		if cfg.verbose {
			fmt.Fprintf(stdout, "Checking %s\n", inputPath)
		}
		if errs[i] != nil {
			fmt.Fprintf(stderr, "%s: %v\n", inputPath, errs[i])
			errorCount++
			continue
		}
		for _, w := range results[i] {
			fmt.Fprintln(stdout, w.Error())
		}
		warningCount += len(results[i])
		if cfg.strict && len(results[i]) > 0 {
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if cfg.verbose {
		fmt.Fprintf(stdout, "All %d file(s) passed checks (%d warning(s))\n", len(files), warningCount)
	}

	return nil
}

// checkFile parses a single template and returns its warnings.
func checkFile(inputPath string) ([]*compiler.Warning, error) {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	p := compiler.NewParser(inputPath, string(source))
	p.Parse()
	return p.Warnings().Warnings(), nil
}
