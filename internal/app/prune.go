package app

import (
	"github.com/chazuruo/founder/internal/history"
)

// PruneOptions contains the options for the prune operation.
type PruneOptions struct {
	// ConfigPath is the path to the config file (optional).
	ConfigPath string
	// HistoryPath overrides the configured history file location (optional).
	HistoryPath string
	// MaxLines overrides the configured prune threshold (optional).
	MaxLines int
	// Force prunes even when the history is below the threshold.
	Force bool
}

// PruneOutput contains the result of a prune operation.
type PruneOutput struct {
	// Path is the history file that was pruned.
	Path string `json:"path"`
	// Before is the entry count before pruning.
	Before int `json:"before"`
	// After is the entry count after pruning.
	After int `json:"after"`
	// Skipped is true when the history was below the threshold and
	// Force was not set.
	Skipped bool `json:"skipped"`
}

// Prune deduplicates the history file, keeping the most recent occurrence
// of each path, and caps it at half the configured maximum. Without Force
// it is a no-op while the history is below the threshold, so a long time
// passes between prunes instead of pruning on every run.
func Prune(opts PruneOptions) (*PruneOutput, error) {
	path, cfg, err := resolveHistoryPath(opts.ConfigPath, opts.HistoryPath)
	if err != nil {
		return nil, err
	}

	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = cfg.History.MaxLines
	}

	entries, err := history.Load(path)
	if err != nil {
		return nil, err
	}

	if !opts.Force && !history.NeedsPrune(len(entries), maxLines) {
		return &PruneOutput{
			Path:    path,
			Before:  len(entries),
			After:   len(entries),
			Skipped: true,
		}, nil
	}

	result, err := history.Prune(path, maxLines)
	if err != nil {
		return nil, err
	}

	return &PruneOutput{Path: path, Before: result.Before, After: result.After}, nil
}
