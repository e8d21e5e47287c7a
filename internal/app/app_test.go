package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazuruo/founder/internal/errors"
)

// setupEnv points HOME and XDG_DATA_HOME at temp dirs so no test touches
// the invoking user's real config or history.
func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func writeHistory(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "file_history")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write history file: %v", err)
	}
	return path
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}

func TestClean(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	a := touch(t, dir, "a")
	histPath := writeHistory(t, a+"\n"+filepath.Join(dir, "gone")+"\n")

	out, err := Clean(CleanOptions{HistoryPath: histPath})
	if err != nil {
		t.Fatalf("Clean() returned error: %v", err)
	}

	if out.Path != histPath {
		t.Errorf("expected path %q, got %q", histPath, out.Path)
	}
	if out.Kept != 1 || out.Dropped != 1 {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestClean_MissingHistory(t *testing.T) {
	setupEnv(t)

	_, err := Clean(CleanOptions{HistoryPath: filepath.Join(t.TempDir(), "file_history")})
	if !errors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestClean_DefaultPathFromEnv(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	a := touch(t, dir, "a")
	histPath := writeHistory(t, a+"\n")
	t.Setenv("FOUNDER_HISTORY_PATH", histPath)

	out, err := Clean(CleanOptions{})
	if err != nil {
		t.Fatalf("Clean() returned error: %v", err)
	}
	if out.Path != histPath {
		t.Errorf("expected env-configured path %q, got %q", histPath, out.Path)
	}
}

func TestAdd(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	doc := touch(t, dir, "doc.txt")
	histPath := filepath.Join(t.TempDir(), "file_history")

	out, err := Add(AddOptions{HistoryPath: histPath, Path: doc})
	if err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	if !filepath.IsAbs(out.Canonical) {
		t.Errorf("expected canonical path to be absolute, got %q", out.Canonical)
	}

	data, err := os.ReadFile(histPath)
	if err != nil {
		t.Fatalf("failed to read history: %v", err)
	}
	if string(data) != out.Canonical+"\n" {
		t.Errorf("unexpected history content: %q", string(data))
	}
}

func TestAdd_MissingPath(t *testing.T) {
	setupEnv(t)

	_, err := Add(AddOptions{
		HistoryPath: filepath.Join(t.TempDir(), "file_history"),
		Path:        filepath.Join(t.TempDir(), "gone.txt"),
	})
	if !errors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestPrune_BelowThresholdSkips(t *testing.T) {
	setupEnv(t)
	histPath := writeHistory(t, "/tmp/a\n/tmp/b\n")

	out, err := Prune(PruneOptions{HistoryPath: histPath, MaxLines: 100})
	if err != nil {
		t.Fatalf("Prune() returned error: %v", err)
	}
	if !out.Skipped {
		t.Error("expected prune to be skipped below threshold")
	}

	data, _ := os.ReadFile(histPath)
	if string(data) != "/tmp/a\n/tmp/b\n" {
		t.Errorf("skipped prune must not rewrite the file, got %q", string(data))
	}
}

func TestPrune_Force(t *testing.T) {
	setupEnv(t)
	histPath := writeHistory(t, "/tmp/a\n/tmp/a\n/tmp/b\n")

	out, err := Prune(PruneOptions{HistoryPath: histPath, MaxLines: 100, Force: true})
	if err != nil {
		t.Fatalf("Prune() returned error: %v", err)
	}
	if out.Skipped {
		t.Error("expected forced prune to run")
	}
	if out.Before != 3 || out.After != 2 {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestPrune_AtThreshold(t *testing.T) {
	setupEnv(t)
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		sb.WriteString("/tmp/x\n")
	}
	histPath := writeHistory(t, sb.String())

	out, err := Prune(PruneOptions{HistoryPath: histPath, MaxLines: 4})
	if err != nil {
		t.Fatalf("Prune() returned error: %v", err)
	}
	if out.Skipped {
		t.Error("expected prune to run at threshold")
	}
	if out.After != 1 {
		t.Errorf("expected 1 entry after prune, got %d", out.After)
	}
}

func TestList(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	a := touch(t, dir, "a")
	b := touch(t, dir, "b")
	histPath := writeHistory(t, a+"\n"+b+"\n"+a+"\n")

	out, err := List(ListOptions{HistoryPath: histPath})
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}

	// Newest first, deduped: a (most recent), then b.
	if len(out.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out.Entries))
	}
	if out.Entries[0].Path != a || out.Entries[1].Path != b {
		t.Errorf("unexpected order: %+v", out.Entries)
	}
	if !out.Entries[0].Exists {
		t.Error("expected existing entry to be marked live")
	}
}

func TestList_AllKeepsDuplicates(t *testing.T) {
	setupEnv(t)
	histPath := writeHistory(t, "/tmp/a\n/tmp/a\n")

	out, err := List(ListOptions{HistoryPath: histPath, All: true})
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(out.Entries) != 2 {
		t.Errorf("expected duplicates kept, got %d entries", len(out.Entries))
	}
}

func TestList_Limit(t *testing.T) {
	setupEnv(t)
	histPath := writeHistory(t, "/tmp/a\n/tmp/b\n/tmp/c\n")

	out, err := List(ListOptions{HistoryPath: histPath, Limit: 2})
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out.Entries))
	}
	if out.Entries[0].Path != "/tmp/c" {
		t.Errorf("expected newest entry first, got %q", out.Entries[0].Path)
	}
}

func TestList_TildeContraction(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	doc := touch(t, tmpHome, "doc.txt")
	histPath := writeHistory(t, doc+"\n")

	out, err := List(ListOptions{HistoryPath: histPath})
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(out.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(out.Entries))
	}
	if out.Entries[0].Display != filepath.Join("~", "doc.txt") {
		t.Errorf("expected ~-contracted display, got %q", out.Entries[0].Display)
	}

	out, err = List(ListOptions{HistoryPath: histPath, NoTilde: true})
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if out.Entries[0].Display != doc {
		t.Errorf("expected full path with NoTilde, got %q", out.Entries[0].Display)
	}
}

func TestList_MissingHistoryIsEmpty(t *testing.T) {
	setupEnv(t)

	out, err := List(ListOptions{HistoryPath: filepath.Join(t.TempDir(), "file_history")})
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(out.Entries) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(out.Entries))
	}
}

func TestStatus(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	a := touch(t, dir, "a")
	gone := filepath.Join(dir, "gone")
	histPath := writeHistory(t, a+"\n"+gone+"\n"+a+"\n")

	out, err := Status(StatusOptions{HistoryPath: histPath})
	if err != nil {
		t.Fatalf("Status() returned error: %v", err)
	}

	if !out.FileExists {
		t.Error("expected file_exists=true")
	}
	if out.Entries != 3 {
		t.Errorf("expected 3 entries, got %d", out.Entries)
	}
	if out.Unique != 2 {
		t.Errorf("expected 2 unique, got %d", out.Unique)
	}
	if out.Live != 2 || out.Dead != 1 {
		t.Errorf("expected 2 live / 1 dead, got %d / %d", out.Live, out.Dead)
	}
	if out.NeedsPrune {
		t.Error("expected needs_prune=false for a small history")
	}
}

func TestStatus_MissingFile(t *testing.T) {
	setupEnv(t)

	out, err := Status(StatusOptions{HistoryPath: filepath.Join(t.TempDir(), "file_history")})
	if err != nil {
		t.Fatalf("Status() returned error: %v", err)
	}
	if out.FileExists {
		t.Error("expected file_exists=false")
	}
	if out.Entries != 0 || out.SizeBytes != 0 {
		t.Errorf("expected empty status, got %+v", out)
	}
}
