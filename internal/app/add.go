package app

import (
	"github.com/chazuruo/founder/internal/history"
)

// AddOptions contains the options for the add operation.
type AddOptions struct {
	// ConfigPath is the path to the config file (optional).
	ConfigPath string
	// HistoryPath overrides the configured history file location (optional).
	HistoryPath string
	// Path is the file path to record. It must exist.
	Path string
}

// AddOutput contains the result of an add operation.
type AddOutput struct {
	// HistoryPath is the history file that was appended to.
	HistoryPath string `json:"history_path"`
	// Canonical is the absolute, symlink-resolved form that was recorded.
	Canonical string `json:"canonical"`
}

// Add canonicalizes a path and appends it to the history file, creating
// the file if needed. A path that does not exist is an error.
func Add(opts AddOptions) (*AddOutput, error) {
	histPath, _, err := resolveHistoryPath(opts.ConfigPath, opts.HistoryPath)
	if err != nil {
		return nil, err
	}

	canonical, err := history.Canonicalize(opts.Path)
	if err != nil {
		return nil, err
	}

	if err := history.Append(histPath, canonical); err != nil {
		return nil, err
	}

	return &AddOutput{HistoryPath: histPath, Canonical: canonical}, nil
}
