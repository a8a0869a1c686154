// Package utils provides common helpers shared by the duokai commands.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExists reports whether a file exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates the directory if it does not exist.
func EnsureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}

// BaseDir returns the absolute directory the running binary lives in.
// The launcher scripts and the run command locate the GUI program
// relative to this directory.
func BaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir, err := filepath.Abs(filepath.Dir(exe))
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	return dir, nil
}
