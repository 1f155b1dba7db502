package fs

import (
	"os"

	"github.com/spf13/afero"
)

// FileSystem extends afero.Fs with reportbake-specific operations.
type FileSystem interface {
	afero.Fs

	// Replace writes data to name, replacing any existing file.
	// On failure the previous content of name (or its absence) is left untouched.
	Replace(name string, data []byte, perm os.FileMode) error
}

// NewReal creates a FileSystem that performs actual filesystem operations.
func NewReal() FileSystem {
	return &RealFileSystem{
		Fs: afero.NewOsFs(),
	}
}

// NewDryRun creates a FileSystem that reads the real filesystem but keeps all writes in memory.
// Uses CopyOnWriteFs so a written manifest can still be read back within the run.
func NewDryRun() FileSystem {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	layer := afero.NewMemMapFs()
	cow := afero.NewCopyOnWriteFs(base, layer)
	return &DryRunFileSystem{Fs: cow}
}

// NewMem creates an in-memory FileSystem for testing.
func NewMem() FileSystem {
	return &MemFileSystem{Fs: afero.NewMemMapFs()}
}

// ReadDirNames returns the names of the entries in dir, in the order the
// underlying filesystem lists them. No sorting is applied.
func ReadDirNames(afs afero.Fs, dir string) ([]string, error) {
	f, err := afs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdirnames(-1)
}

// IsDir reports whether path exists and is a directory.
// A missing path is not an error; any other stat failure is returned.
func IsDir(afs afero.Fs, path string) (bool, error) {
	info, err := afs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
