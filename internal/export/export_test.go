package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewExporter(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		e, err := NewExporter(FormatJSON)
		require.NoError(t, err)
		assert.NotNil(t, e)
	})

	t.Run("yaml", func(t *testing.T) {
		e, err := NewExporter(FormatYAML)
		require.NoError(t, err)
		assert.NotNil(t, e)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := NewExporter(Format("xml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0644))
	missing := filepath.Join(dir, "missing.txt")

	entries := Collect([]string{present, "", missing})

	require.Len(t, entries, 2)

	assert.Equal(t, present, entries[0].Path)
	assert.True(t, entries[0].Exists)
	require.NotNil(t, entries[0].ModTime)

	assert.Equal(t, missing, entries[1].Path)
	assert.False(t, entries[1].Exists)
	assert.Nil(t, entries[1].ModTime)
}

func TestExportString_JSON(t *testing.T) {
	e, err := NewExporter(FormatJSON)
	require.NoError(t, err)

	out, err := e.ExportString([]Entry{
		{Path: "/tmp/a", Exists: true},
		{Path: "/tmp/b", Exists: false},
	})
	require.NoError(t, err)

	var decoded []Entry
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "/tmp/a", decoded[0].Path)
	assert.True(t, decoded[0].Exists)
	assert.False(t, decoded[1].Exists)
}

func TestExportString_YAML(t *testing.T) {
	e, err := NewExporter(FormatYAML)
	require.NoError(t, err)

	out, err := e.ExportString([]Entry{{Path: "/tmp/a", Exists: true}})
	require.NoError(t, err)

	var decoded []Entry
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "/tmp/a", decoded[0].Path)
	assert.True(t, decoded[0].Exists)
}

func TestExportHistory(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0644))
	histPath := filepath.Join(dir, "file_history")
	require.NoError(t, os.WriteFile(histPath, []byte(present+"\n"), 0644))

	e, err := NewExporter(FormatJSON)
	require.NoError(t, err)

	out, err := exportHistoryString(t, e, histPath)
	require.NoError(t, err)

	var decoded []Entry
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, present, decoded[0].Path)
}

func TestExportHistory_MissingFile(t *testing.T) {
	e, err := NewExporter(FormatJSON)
	require.NoError(t, err)

	out, err := exportHistoryString(t, e, filepath.Join(t.TempDir(), "file_history"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func exportHistoryString(t *testing.T, e *Exporter, histPath string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	err := e.ExportHistory(&buf, histPath)
	return buf.String(), err
}
