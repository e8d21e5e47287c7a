package app

import (
	"github.com/chazuruo/founder/internal/history"
)

// CleanOptions contains the options for the clean operation.
type CleanOptions struct {
	// ConfigPath is the path to the config file (optional).
	ConfigPath string
	// HistoryPath overrides the configured history file location (optional).
	HistoryPath string
}

// CleanOutput contains the result of a clean operation.
type CleanOutput struct {
	// Path is the history file that was compacted.
	Path string `json:"path"`
	// Kept is the number of entries whose paths still exist.
	Kept int `json:"kept"`
	// Dropped is the number of entries removed.
	Dropped int `json:"dropped"`
}

// Clean compacts the history file, dropping entries whose paths no longer
// exist. Read or write failures on the history file itself are fatal;
// per-entry existence failures are not.
func Clean(opts CleanOptions) (*CleanOutput, error) {
	path, _, err := resolveHistoryPath(opts.ConfigPath, opts.HistoryPath)
	if err != nil {
		return nil, err
	}

	result, err := history.Clean(path)
	if err != nil {
		return nil, err
	}

	return &CleanOutput{
		Path:    path,
		Kept:    result.Kept,
		Dropped: result.Dropped,
	}, nil
}
