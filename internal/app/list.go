package app

import (
	"os"

	"github.com/chazuruo/founder/internal/history"
	"github.com/chazuruo/founder/internal/paths"
)

// ListOptions contains the options for the list operation.
type ListOptions struct {
	// ConfigPath is the path to the config file (optional).
	ConfigPath string
	// HistoryPath overrides the configured history file location (optional).
	HistoryPath string
	// All keeps duplicate entries instead of suppressing them.
	All bool
	// Limit caps the number of entries returned (0 = no limit).
	Limit int
	// NoTilde disables ~/ contraction regardless of config.
	NoTilde bool
}

// ListEntry is one listed history record.
type ListEntry struct {
	// Path is the entry as stored in the history file.
	Path string `json:"path"`
	// Display is the entry prepared for display (possibly ~-contracted).
	Display string `json:"display"`
	// Exists reports whether the path resolved at list time.
	Exists bool `json:"exists"`
}

// ListOutput contains the result of a list operation.
type ListOutput struct {
	// HistoryPath is the history file that was read.
	HistoryPath string `json:"history_path"`
	// Entries are the history records, most recent first.
	Entries []ListEntry `json:"entries"`
}

// List returns history entries most recent first. Duplicates are
// suppressed unless All (or the config) says otherwise. A missing history
// file is an empty history, not an error.
func List(opts ListOptions) (*ListOutput, error) {
	path, cfg, err := resolveHistoryPath(opts.ConfigPath, opts.HistoryPath)
	if err != nil {
		return nil, err
	}

	raw, err := history.LoadIfExists(path)
	if err != nil {
		return nil, err
	}

	var ordered []string
	if opts.All || !cfg.List.Dedupe {
		// Newest first, blank lines skipped, duplicates kept.
		for i := len(raw) - 1; i >= 0; i-- {
			if raw[i] != "" {
				ordered = append(ordered, raw[i])
			}
		}
	} else {
		ordered = history.DedupeNewestFirst(raw)
	}

	if opts.Limit > 0 && len(ordered) > opts.Limit {
		ordered = ordered[:opts.Limit]
	}

	contract := cfg.List.Tilde && !opts.NoTilde
	home := ""
	if contract {
		// A missing home directory just disables contraction.
		home, _ = os.UserHomeDir()
	}

	entries := make([]ListEntry, 0, len(ordered))
	for _, p := range ordered {
		display := p
		if contract {
			display = paths.ContractTilde(p, home)
		}
		entries = append(entries, ListEntry{
			Path:    p,
			Display: display,
			Exists:  history.Exists(p),
		})
	}

	return &ListOutput{HistoryPath: path, Entries: entries}, nil
}
