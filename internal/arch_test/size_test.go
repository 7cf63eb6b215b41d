package arch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFilesPerPackage = 20
	maxLinesPerFile    = 400
)

// TestPackageFileCount verifies that no internal package has more than
// maxFilesPerPackage non-test .go files.
func TestPackageFileCount(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for _, pkg := range internalPackages(t) {
		if n := len(goFilesIn(t, filepath.Join(dir, pkg))); n > maxFilesPerPackage {
			t.Errorf("package %s has %d .go files (limit: %d); consider splitting", pkg, n, maxFilesPerPackage)
		}
	}
}

// TestFileLineCount verifies that no .go file in internal packages,
// test files included, exceeds maxLinesPerFile lines.
func TestFileLineCount(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for _, pkg := range internalPackages(t) {
		for _, path := range allGoFilesIn(t, filepath.Join(dir, pkg)) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading %s: %v", path, err)
			}
			n := bytes.Count(data, []byte("\n"))
			if len(data) > 0 && data[len(data)-1] != '\n' {
				n++
			}
			if n > maxLinesPerFile {
				t.Errorf("%s has %d lines (limit: %d); consider decomposing", relativeFilePath(path), n, maxLinesPerFile)
			}
		}
	}
}
