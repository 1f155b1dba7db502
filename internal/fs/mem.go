package fs

import (
	"os"

	"github.com/spf13/afero"
)

// MemFileSystem is an in-memory filesystem for testing.
// Unlike DryRunFileSystem, it performs no logging.
type MemFileSystem struct {
	afero.Fs
}

// Replace writes data to name in memory.
func (m *MemFileSystem) Replace(name string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(m.Fs, name, data, perm)
}
