package util

import (
	"os"
	"path/filepath"
)

// EnsureDir creates path (and parents) if missing.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile writes data to path, creating the parent directory first.
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
