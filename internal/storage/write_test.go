package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "doc.reqif")
	content := []byte("<REQ-IF/>\n")

	require.NoError(t, WriteArtifact(path, content))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestWriteArtifactOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.reqif")
	require.NoError(t, WriteArtifact(path, []byte("old")))
	require.NoError(t, WriteArtifact(path, []byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteArtifactLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteArtifact(filepath.Join(dir, "doc.reqif"), []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.reqif", entries[0].Name())
}
