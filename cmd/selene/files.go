package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const templateExt = ".selene"

// collectSeleneFiles resolves command-line paths to template files, in the
// order the paths are given and without duplicates:
//   - "dir/..." walks dir recursively ("..." alone means ".")
//   - a directory contributes the templates directly inside it
//   - a file is taken when it has the .selene extension
func collectSeleneFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, path := range paths {
		root, recursive := splitPattern(path)
		if err := walkTemplates(root, recursive, add); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// splitPattern separates a trailing "/..." from path.
func splitPattern(path string) (root string, recursive bool) {
	rest, ok := strings.CutSuffix(path, "...")
	if !ok || (rest != "" && !strings.HasSuffix(rest, "/")) {
		return path, false
	}
	root = strings.TrimSuffix(rest, "/")
	if root == "" {
		root = "."
	}
	return root, true
}

// walkTemplates calls fn for every template at or below root. Directories
// below root are only entered when recursive is set.
func walkTemplates(root string, recursive bool, fn func(path string)) error {
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(p, templateExt) {
			fn(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	return nil
}

// findFiles applies the default path and fails when nothing matches.
func findFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectSeleneFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found", templateExt)
	}
	return files, nil
}
