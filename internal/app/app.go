// Package app provides high-level application logic for founder commands.
//
// Each operation takes an Options struct and returns an Output struct, with
// the CLI layer handling flags and presentation. The history file location
// is always resolved here and passed down explicitly, so every operation
// can be pointed at a temporary file in tests.
package app

import (
	"fmt"

	"github.com/chazuruo/founder/internal/config"
)

// loadConfig loads the config from an explicit path, falling back to XDG
// detection and built-in defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadWithDefaults()
}

// HistoryFile resolves the history file location the same way every
// operation does: an explicit override wins, then the configured path,
// then the XDG default.
func HistoryFile(configPath, override string) (string, error) {
	path, _, err := resolveHistoryPath(configPath, override)
	return path, err
}

// resolveHistoryPath returns the history file location for an operation.
// An explicit override wins over the configured (or default) location.
func resolveHistoryPath(configPath, override string) (string, *config.Config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load config: %w", err)
	}

	if override != "" {
		return override, cfg, nil
	}

	path, err := cfg.HistoryPath()
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve history path: %w", err)
	}
	return path, cfg, nil
}
