// Package history implements founder's file history store.
//
// The history file is plain text, one previously opened file path per line,
// oldest first, each line terminated by a single newline. Entries are
// whitespace-trimmed on load and written back trimmed. The same file is
// shared by every operation in this package: append, clean, prune, list.
package history

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chazuruo/founder/internal/errors"
)

// Load reads the history file into an ordered slice of trimmed entries.
// Interior blank lines are kept as empty strings; the terminating newline
// does not produce a trailing empty entry.
//
// A missing file is an error wrapping errors.ErrNotFound; an unreadable
// file wraps errors.ErrPermission.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.HistoryError{Op: "load", Path: path, Err: errors.FromOS(err)}
	}
	return splitEntries(data), nil
}

// LoadIfExists is Load, except a missing file yields an empty history
// instead of an error. Read-only commands use this so a fresh install
// behaves like an empty history.
func LoadIfExists(path string) ([]string, error) {
	entries, err := Load(path)
	if errors.IsNotFound(err) {
		return nil, nil
	}
	return entries, err
}

// splitEntries splits raw file bytes into trimmed lines.
func splitEntries(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	lines := strings.Split(string(data), "\n")
	// A trailing newline produces a final empty segment that is not a line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	entries := make([]string, len(lines))
	for i, line := range lines {
		entries[i] = strings.TrimSpace(line)
	}
	return entries
}

// Write atomically replaces the history file with the given entries, one
// per line, each terminated by a newline. Zero entries produce a zero-byte
// file. The temporary file is created in the same directory so the rename
// stays on one filesystem.
func Write(path string, entries []string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &errors.HistoryError{Op: "write", Path: path, Err: errors.FromOS(err)}
	}
	tmpPath := tmp.Name()

	var buf strings.Builder
	for _, entry := range entries {
		buf.WriteString(entry)
		buf.WriteByte('\n')
	}

	if _, err := tmp.WriteString(buf.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &errors.HistoryError{Op: "write", Path: path, Err: errors.FromOS(err)}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &errors.HistoryError{Op: "write", Path: path, Err: errors.FromOS(err)}
	}

	// CreateTemp uses 0600; the history file is conventionally 0644.
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return &errors.HistoryError{Op: "write", Path: path, Err: errors.FromOS(err)}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &errors.HistoryError{Op: "write", Path: path, Err: errors.FromOS(err)}
	}

	return nil
}

// Exists reports whether the given path currently resolves to a filesystem
// entry. Stat follows symlinks, so a dangling symlink does not exist.
// Any Stat failure counts as nonexistent: a single malformed entry must
// never abort a whole compaction run.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Canonicalize resolves a path to its absolute, symlink-free form.
// It fails if the path does not currently exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.FromOS(err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.FromOS(err)
	}
	return resolved, nil
}

// Append canonicalizes entry and appends it to the history file, creating
// the file if needed. Canonicalization fails if entry does not exist.
func Append(path, entry string) error {
	canonical, err := Canonicalize(entry)
	if err != nil {
		return &errors.HistoryError{Op: "append", Path: path, Err: err}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &errors.HistoryError{Op: "append", Path: path, Err: errors.FromOS(err)}
	}

	if _, err := f.WriteString(canonical + "\n"); err != nil {
		_ = f.Close()
		return &errors.HistoryError{Op: "append", Path: path, Err: errors.FromOS(err)}
	}
	if err := f.Close(); err != nil {
		return &errors.HistoryError{Op: "append", Path: path, Err: errors.FromOS(err)}
	}

	return nil
}

// DedupeNewestFirst returns the unique non-empty entries, most recent
// occurrence first. The input is oldest-first file order.
func DedupeNewestFirst(entries []string) []string {
	seen := make(map[string]bool, len(entries))
	var result []string

	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if entry == "" || seen[entry] {
			continue
		}
		seen[entry] = true
		result = append(result, entry)
	}

	return result
}
