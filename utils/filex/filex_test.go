// File: filex_test.go
// Title: Tests for File System Helpers
// Description: Verifies existence checks, directory creation, and path
//              resolution.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

package filex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExistsAndIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !Exists(dir) || !Exists(file) {
		t.Error("existing paths reported as missing")
	}
	if Exists(filepath.Join(dir, "absent")) {
		t.Error("missing path reported as existing")
	}
	if !IsDir(dir) {
		t.Error("directory not recognized")
	}
	if IsDir(file) {
		t.Error("file reported as directory")
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if !IsDir(path) {
		t.Error("nested directory was not created")
	}
	if err := EnsureDir(path); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

func TestIsWritableDir(t *testing.T) {
	dir := t.TempDir()
	if !IsWritableDir(dir) {
		t.Error("temp dir should be writable")
	}
	if IsWritableDir(filepath.Join(dir, "absent")) {
		t.Error("missing dir reported writable")
	}
}

func TestSize(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(file, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := Size(file)
	if err != nil {
		t.Fatalf("Size() error = %v", err)
	}
	if n != 5 {
		t.Errorf("Size() = %d, want 5", n)
	}
	if _, err := Size(file + ".absent"); err == nil {
		t.Error("Size() on missing file should fail")
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("/var/log", "app.log"); got != filepath.Join("/var/log", "app.log") {
		t.Errorf("Resolve() = %q", got)
	}
	if got := Resolve("/var/log", "/tmp/app.log"); got != "/tmp/app.log" {
		t.Errorf("Resolve() with absolute target = %q", got)
	}
}
