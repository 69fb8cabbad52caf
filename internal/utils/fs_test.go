package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileCreatesParentsAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "translated", "a.md")

	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	got, err := ReadToString(path)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	// No temp files are left behind
	entries, err := os.ReadDir(filepath.Join(dir, "translated"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.md", entries[0].Name())
}

func TestWriteFileInDirRequiresDirectory(t *testing.T) {
	dir := t.TempDir()

	err := WriteFileInDir(filepath.Join(dir, "missing", "a.md"), []byte("A"))
	require.Error(t, err)
	assert.False(t, DirExists(filepath.Join(dir, "missing")))

	require.NoError(t, WriteFileInDir(filepath.Join(dir, "a.md"), []byte("A")))
	assert.True(t, FileExists(filepath.Join(dir, "a.md")))
}

func TestReadToStringMissingFile(t *testing.T) {
	_, err := ReadToString(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadToStringRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.md")
	require.NoError(t, os.WriteFile(path, []byte("ok\xff\xfe"), 0o644))

	_, err := ReadToString(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
