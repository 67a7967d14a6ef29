package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/exticons/pkg/filesystem"
	"github.com/arthur-debert/exticons/pkg/types"
)

// CreateFile writes content at path, creating parent directories.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, fsys types.FS, path, content string) string {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates a directory and its parents.
func CreateDir(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	if err := fsys.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// FileExists checks if a file exists and is not a directory.
func FileExists(t *testing.T, fsys types.FS, path string) bool {
	t.Helper()

	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	content, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// AssertFileContent checks that a file exists and has the expected content.
func AssertFileContent(t *testing.T, fsys types.FS, path, expected string) {
	t.Helper()

	if !FileExists(t, fsys, path) {
		t.Fatalf("File %s does not exist", path)
	}
	if actual := ReadFile(t, fsys, path); actual != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertNoFile checks that nothing exists at path.
func AssertNoFile(t *testing.T, fsys types.FS, path string) {
	t.Helper()

	exists, err := filesystem.Exists(fsys, path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	if exists {
		t.Errorf("File %s exists but should not", path)
	}
}
