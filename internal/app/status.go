package app

import (
	"os"

	"github.com/chazuruo/founder/internal/history"
)

// StatusOptions contains the options for the status operation.
type StatusOptions struct {
	// ConfigPath is the path to the config file (optional).
	ConfigPath string
	// HistoryPath overrides the configured history file location (optional).
	HistoryPath string
}

// StatusOutput contains summary information about the history file.
type StatusOutput struct {
	// Path is the history file location.
	Path string `json:"path"`
	// FileExists reports whether the history file is present.
	FileExists bool `json:"file_exists"`
	// SizeBytes is the history file size, when present.
	SizeBytes int64 `json:"size_bytes"`
	// Entries is the total entry count, blank lines included.
	Entries int `json:"entries"`
	// Unique is the count of distinct non-blank entries.
	Unique int `json:"unique"`
	// Live is the count of entries whose paths still exist.
	Live int `json:"live"`
	// Dead is the count of entries whose paths no longer exist.
	Dead int `json:"dead"`
	// MaxLines is the configured prune threshold.
	MaxLines int `json:"max_lines"`
	// NeedsPrune is true when the entry count has reached the threshold.
	NeedsPrune bool `json:"needs_prune"`
}

// Status summarizes the history file: counts, size, and whether pruning
// is due. A missing history file reports as empty.
func Status(opts StatusOptions) (*StatusOutput, error) {
	path, cfg, err := resolveHistoryPath(opts.ConfigPath, opts.HistoryPath)
	if err != nil {
		return nil, err
	}

	out := &StatusOutput{Path: path, MaxLines: cfg.History.MaxLines}

	if info, err := os.Stat(path); err == nil {
		out.FileExists = true
		out.SizeBytes = info.Size()
	}

	entries, err := history.LoadIfExists(path)
	if err != nil {
		return nil, err
	}

	out.Entries = len(entries)
	out.Unique = len(history.DedupeNewestFirst(entries))
	for _, e := range entries {
		if e == "" {
			continue
		}
		if history.Exists(e) {
			out.Live++
		} else {
			out.Dead++
		}
	}
	out.NeedsPrune = history.NeedsPrune(out.Entries, out.MaxLines)

	return out, nil
}
