package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// FileEntry describes a file or directory to create in a test tree.
type FileEntry struct {
	Path    string // relative path using forward slashes (e.g., "fixed/reg/foo")
	IsDir   bool   // true for directories
	Content string // file content
}

// File creates a FileEntry for a file at the given path.
// Path should use forward slashes regardless of OS.
func File(path string) FileEntry {
	return FileEntry{Path: path, IsDir: false}
}

// Dir creates a FileEntry for a directory at the given path.
// Path should use forward slashes regardless of OS.
func Dir(path string) FileEntry {
	return FileEntry{Path: path, IsDir: true}
}

// WithContent sets the file content.
func (f FileEntry) WithContent(content string) FileEntry {
	f.Content = content
	return f
}

// Crate creates the directory of a crate with no version entries:
// <category>/reg/<crate>.
func Crate(category, crate string) FileEntry {
	return Dir(category + "/reg/" + crate)
}

// Report creates a report file inside a crate's version directory:
// <category>/reg/<crate>/<version>/<name>.
func Report(category, crate, version, name, content string) FileEntry {
	return File(category + "/reg/" + crate + "/" + version + "/" + name).WithContent(content)
}

// CreateEntries creates files and directories under root.
func CreateEntries(t *testing.T, afs afero.Fs, root string, entries ...FileEntry) {
	t.Helper()

	for _, e := range entries {
		// Convert forward slashes to OS-specific separator for Windows compatibility
		path := filepath.Join(root, filepath.FromSlash(e.Path))

		if e.IsDir {
			if err := afs.MkdirAll(path, 0755); err != nil {
				t.Fatalf("failed to create directory %s: %v", e.Path, err)
			}
			continue
		}

		// Ensure parent directory exists
		if err := afs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create parent directory for %s: %v", e.Path, err)
		}

		if err := afero.WriteFile(afs, path, []byte(e.Content), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", e.Path, err)
		}
	}
}
