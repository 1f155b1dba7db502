package fs

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// RealFileSystem performs actual filesystem operations.
type RealFileSystem struct {
	afero.Fs
}

// Replace writes data to a temporary file next to name and renames it into place.
func (r *RealFileSystem) Replace(name string, data []byte, perm os.FileMode) error {
	slog.Debug("replacing", "path", name, "bytes", len(data))

	tmp, err := afero.TempFile(r.Fs, filepath.Dir(name), "."+filepath.Base(name)+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		r.Fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		r.Fs.Remove(tmpName)
		return err
	}
	if err := r.Fs.Chmod(tmpName, perm); err != nil {
		r.Fs.Remove(tmpName)
		return err
	}

	if err := r.Fs.Rename(tmpName, name); err != nil {
		// Clean up the temp file if the rename fails
		r.Fs.Remove(tmpName)
		return err
	}
	return nil
}
