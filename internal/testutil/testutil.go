package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempBooksDir creates a temporary books directory for testing
func TempBooksDir(t *testing.T, name string) string {
	tmpDir := t.TempDir()
	booksDir := filepath.Join(tmpDir, name)
	require.NoError(t, os.MkdirAll(booksDir, 0755))
	return booksDir
}

// WriteFile writes content to a file in the test directory
func WriteFile(t *testing.T, dir, path, content string) {
	fullPath := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
}

// WritePages writes one file per entry of pages (file name -> content)
func WritePages(t *testing.T, dir string, pages map[string]string) {
	for name, content := range pages {
		WriteFile(t, dir, name, content)
	}
}

// ReadFile reads content from a test file
func ReadFile(t *testing.T, dir, path string) string {
	fullPath := filepath.Join(dir, path)
	content, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	return string(content)
}

// ListFiles returns the sorted names of the entries in dir
func ListFiles(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// FileExists checks if a file exists
func FileExists(t *testing.T, path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists checks if a directory exists
func DirExists(t *testing.T, path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
