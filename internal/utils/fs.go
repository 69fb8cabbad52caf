package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for files that are not valid UTF-8 text
var ErrInvalidUTF8 = errors.New("not valid UTF-8")

// ReadToString reads a UTF-8 text file into a string with error context
func ReadToString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read '%s': %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read '%s': %w", path, ErrInvalidUTF8)
	}
	return string(data), nil
}

// WriteFile writes content to path, creating parent directories if needed.
// The content is staged in a temp file next to path and renamed over it, so
// readers never observe a partially written file.
func WriteFile(path string, content []byte) error {
	if parent := filepath.Dir(path); parent != "." {
		if err := CreateDirAll(parent); err != nil {
			return err
		}
	}
	return writeAtomic(path, content)
}

// WriteFileInDir writes content to path without creating its directory.
// A missing directory is reported as an error.
func WriteFileInDir(path string, content []byte) error {
	if !DirExists(filepath.Dir(path)) {
		return fmt.Errorf("failed to write '%s': directory '%s' does not exist", path, filepath.Dir(path))
	}
	return writeAtomic(path, content)
}

func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return nil
}

// CreateDirAll creates a directory with better error messages
func CreateDirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", path, err)
	}
	return nil
}

// DirExists checks if a directory exists
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
