// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteHistory writes raw content as a history file in a fresh temp dir
// and returns its path. The file is deleted when the test completes.
func WriteHistory(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "file_history")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write history file: %v", err)
	}

	return path
}

// TouchFiles creates empty files with the given names in dir and returns
// their full paths in order.
func TouchFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()

	paths := make([]string, len(names))
	for i, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
		paths[i] = path
	}

	return paths
}
