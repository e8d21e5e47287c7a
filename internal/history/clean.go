package history

// CleanResult summarizes a clean run.
type CleanResult struct {
	// Kept is the number of entries whose paths still exist.
	Kept int
	// Dropped is the number of entries removed.
	Dropped int
}

// Clean rewrites the history file, keeping only entries whose paths still
// exist on the filesystem. Retained entries keep their original relative
// order, duplicates included; the output is an order-preserving subsequence
// of the input. An empty file stays empty, and a history whose paths are
// all gone becomes a zero-byte file.
//
// A missing or unreadable history file is fatal. A failing existence check
// on an individual entry is not: that entry is simply dropped.
func Clean(path string) (CleanResult, error) {
	entries, err := Load(path)
	if err != nil {
		return CleanResult{}, err
	}

	kept := make([]string, 0, len(entries))
	for _, entry := range entries {
		if Exists(entry) {
			kept = append(kept, entry)
		}
	}

	if err := Write(path, kept); err != nil {
		return CleanResult{}, err
	}

	return CleanResult{Kept: len(kept), Dropped: len(entries) - len(kept)}, nil
}
