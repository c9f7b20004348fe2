// File path: internal/ingest/detector.go

// Package ingest collects and aggregates the raw code and documentation text
// that the engine analyzes. All I/O lives here; the engine itself only ever
// sees plain strings.
package ingest

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

var excludedDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".venv":        {},
	"venv":         {},
	"node_modules": {},
	"vendor":       {},
	"__pycache__":  {},
	"site-packages": {},
}

// CodeExtensions are the source file suffixes aggregated into the code corpus.
var CodeExtensions = map[string]struct{}{
	".py":   {},
	".js":   {},
	".ts":   {},
	".go":   {},
	".java": {},
	".cs":   {},
	".cpp":  {},
	".c":    {},
	".rb":   {},
	".yaml": {},
	".yml":  {},
	".json": {},
}

// DocExtensions are the documentation suffixes aggregated into the doc corpus.
var DocExtensions = map[string]struct{}{
	".md":  {},
	".txt": {},
	".rst": {},
}

// ListFiles walks root and returns every file whose extension is in exts,
// skipping version-control and dependency directories. Results are sorted so
// aggregation order stays deterministic.
func ListFiles(root string, exts map[string]struct{}) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := excludedDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := exts[ext]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ListCodeFiles returns the source files under root.
func ListCodeFiles(root string) ([]string, error) {
	return ListFiles(root, CodeExtensions)
}

// ListDocFiles returns the documentation files under root.
func ListDocFiles(root string) ([]string, error) {
	return ListFiles(root, DocExtensions)
}
