// File: filex.go
// Title: File System Helpers
// Description: Small path and directory helpers used by the output
//              resource layer when placing log files.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

// Package filex provides the path and directory helpers used when
// placing and probing log output files.
package filex

import (
	"os"
	"path/filepath"
)

// Exists reports whether the path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether the path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates the directory and any missing parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// IsWritableDir reports whether files can be created in the directory.
// It probes by creating and removing a temporary file, which also
// covers read-only mounts that plain permission bits miss.
func IsWritableDir(path string) bool {
	if !IsDir(path) {
		return false
	}
	probe, err := os.CreateTemp(path, ".writable-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return true
}

// Size returns the size of a file in bytes.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Resolve joins a target with a base directory unless the target is
// already absolute.
func Resolve(base, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(base, target)
}
