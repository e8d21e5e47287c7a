package history

// DefaultMaxLines is the history size at which pruning is due.
const DefaultMaxLines = 1000

// PruneResult summarizes a prune run.
type PruneResult struct {
	// Before is the number of entries read, blank lines included.
	Before int
	// After is the number of entries written back.
	After int
}

// Prune rewrites the history file with duplicates removed and the entry
// count capped. Scanning newest-first keeps the most recent occurrence of
// each path. The cap is half of maxLines, so a freshly pruned history has
// room to grow before the next prune is due rather than pruning on every
// run once the file fills with unique entries.
//
// The surviving entries are written back oldest-first, matching file order.
func Prune(path string, maxLines int) (PruneResult, error) {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	entries, err := Load(path)
	if err != nil {
		return PruneResult{}, err
	}

	unique := DedupeNewestFirst(entries)
	if limit := maxLines / 2; len(unique) > limit {
		unique = unique[:limit]
	}

	// DedupeNewestFirst returns newest-first; file order is oldest-first.
	for i, j := 0, len(unique)-1; i < j; i, j = i+1, j-1 {
		unique[i], unique[j] = unique[j], unique[i]
	}

	if err := Write(path, unique); err != nil {
		return PruneResult{}, err
	}

	return PruneResult{Before: len(entries), After: len(unique)}, nil
}

// NeedsPrune reports whether the history has reached the prune threshold.
func NeedsPrune(entryCount, maxLines int) bool {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return entryCount >= maxLines
}
