package fs

import (
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

// DryRunFileSystem reads from the real filesystem without modifying it.
// Writes land in the in-memory layer of a CopyOnWriteFs.
type DryRunFileSystem struct {
	afero.Fs
}

// Replace writes data to the in-memory layer only.
func (d *DryRunFileSystem) Replace(name string, data []byte, perm os.FileMode) error {
	slog.Info("dry run: not writing to disk", "path", name, "bytes", len(data))
	return afero.WriteFile(d.Fs, name, data, perm)
}
