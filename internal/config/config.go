// Package config provides configuration management for founder.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"

	"github.com/chazuruo/founder/internal/history"
	"github.com/chazuruo/founder/internal/paths"
)

// Config is the top-level configuration struct for founder.
// It contains all configuration sections as embedded structs.
type Config struct {
	History HistoryConfig `toml:"history"`
	List    ListConfig    `toml:"list"`
	TUI     TUIConfig     `toml:"tui"`
}

// HistoryConfig contains history file settings.
type HistoryConfig struct {
	// Path is the history file location. Supports a leading ~/.
	// When empty, the XDG default is used
	// ($XDG_DATA_HOME/founder/file_history).
	Path string `toml:"path"`

	// MaxLines is the history size at which pruning is due.
	// Pruning keeps at most MaxLines/2 entries.
	MaxLines int `toml:"max_lines"`
}

// ListConfig contains display settings for the list command.
type ListConfig struct {
	// Dedupe suppresses duplicate entries when listing.
	Dedupe bool `toml:"dedupe"`

	// Tilde contracts paths under the home directory to ~/ for display.
	Tilde bool `toml:"tilde"`
}

// TUIConfig contains terminal UI settings.
type TUIConfig struct {
	// Enabled controls whether the interactive picker is available
	// (when false, pick falls back to plain listing).
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Path:     "",
			MaxLines: history.DefaultMaxLines,
		},
		List: ListConfig{
			Dedupe: true,
			Tilde:  true,
		},
		TUI: TUIConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	// MaxLines/2 is the prune cap, so anything below 2 would prune to nothing.
	if c.History.MaxLines < 2 {
		return fmt.Errorf("history.max_lines must be >= 2; got %d", c.History.MaxLines)
	}
	return nil
}

// HistoryPath resolves the configured history file location. An empty
// configured path falls back to the XDG default, creating the founder data
// directory as needed.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path == "" {
		return paths.HistoryPath()
	}
	return paths.ExpandTilde(c.History.Path)
}
