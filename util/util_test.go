package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExistenceChecks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "CMakeLists.txt")
	if err := os.WriteFile(file, []byte("project(x)\n"), 0664); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing")

	if !DirExists(dir) || DirExists(file) || DirExists(missing) {
		t.Fatal("unexpected DirExists result")
	}
	if !Exists(file) || !Exists(dir) || Exists(missing) {
		t.Fatal("unexpected Exists result")
	}
}
