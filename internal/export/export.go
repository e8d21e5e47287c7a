// Package export serializes history entries in machine-readable formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chazuruo/founder/internal/history"
)

// Format represents the export format.
type Format string

const (
	// FormatJSON exports as JSON.
	FormatJSON Format = "json"
	// FormatYAML exports as YAML.
	FormatYAML Format = "yaml"
)

// Entry is one exported history record.
type Entry struct {
	// Path is the history entry as stored.
	Path string `json:"path" yaml:"path"`
	// Exists reports whether the path resolved at export time.
	Exists bool `json:"exists" yaml:"exists"`
	// ModTime is the modification time of the target, when statable.
	ModTime *time.Time `json:"mod_time,omitempty" yaml:"mod_time,omitempty"`
}

// Exporter serializes history entries.
type Exporter struct {
	format Format
}

// NewExporter creates an exporter for the given format.
func NewExporter(format Format) (*Exporter, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return &Exporter{format: format}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (must be json or yaml)", format)
	}
}

// Collect builds export entries from raw history entries, statting each
// path once. Blank lines are skipped; stat failures yield Exists=false
// with no ModTime.
func Collect(entries []string) []Entry {
	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e == "" {
			continue
		}

		record := Entry{Path: e}
		if info, err := os.Stat(e); err == nil {
			record.Exists = true
			mt := info.ModTime()
			record.ModTime = &mt
		}
		result = append(result, record)
	}
	return result
}

// Export writes the entries to w in the configured format.
func (e *Exporter) Export(w io.Writer, entries []Entry) error {
	switch e.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to finalize YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", e.format)
	}
	return nil
}

// ExportString renders the entries to a string.
func (e *Exporter) ExportString(entries []Entry) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(&buf, entries); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportHistory loads the history file and exports it to w.
// A missing history file exports as an empty list.
func (e *Exporter) ExportHistory(w io.Writer, histPath string) error {
	entries, err := history.LoadIfExists(histPath)
	if err != nil {
		return err
	}
	return e.Export(w, Collect(entries))
}
