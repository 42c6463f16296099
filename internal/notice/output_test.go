// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("in", "AIRAC_2501.pdf"), InputPath("in", "2501"))
	assert.Equal(t, filepath.Join("out", "ciclo2501.txt"), OutputPath("out", "2501"))
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "ciclo2501.txt")

	require.NoError(t, WriteDocument(path, "first"))
	require.NoError(t, WriteDocument(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteDocumentFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	// A directory in the way of the target makes the rename fail.
	path := filepath.Join(dir, "ciclo2501.txt")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0o644))

	err := WriteDocument(path, "content")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
}
