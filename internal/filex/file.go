// Package filex contains filesystem helpers used when preparing local
// storage.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) if missing and returns its absolute
// path. Relative paths are resolved against the working directory.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// DataFile ensures dir exists and returns the path of name inside it.
func DataFile(dir, name string) (string, error) {
	abs, err := EnsureDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(abs, name), nil
}
