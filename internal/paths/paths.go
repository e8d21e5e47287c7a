// Package paths resolves founder's user-scoped file locations.
//
// The history file lives in the user data directory, following the XDG base
// directory convention: $XDG_DATA_HOME/founder/file_history, falling back to
// ~/.local/share/founder/file_history.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppDir is the founder-specific subdirectory within the user data directory.
	AppDir = "founder"

	// HistoryFilename is the history file name within AppDir.
	HistoryFilename = "file_history"
)

// DataDir returns the founder data directory, creating it if needed.
// It honors $XDG_DATA_HOME and falls back to ~/.local/share.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(base, AppDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dir, nil
}

// HistoryPath returns the path to the history file, creating the data
// directory if needed. The file itself is not created.
func HistoryPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HistoryFilename), nil
}

// ExpandTilde expands a leading ~ or ~/ to the user's home directory.
// Paths without a leading tilde are returned unchanged.
func ExpandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"+string(filepath.Separator))), nil
}

// ContractTilde rewrites a path for display. Paths under the home directory
// get a ~/ prefix. A path whose first component is a literal ~ gets a ./
// prefix so it cannot be confused with the contraction when read back.
func ContractTilde(path, home string) string {
	sep := string(filepath.Separator)

	if home != "" {
		if path == home {
			return "~"
		}
		if strings.HasPrefix(path, home+sep) {
			return "~" + sep + strings.TrimPrefix(path, home+sep)
		}
	}

	if path == "~" || strings.HasPrefix(path, "~"+sep) {
		return "." + sep + path
	}

	return path
}
