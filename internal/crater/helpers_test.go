package crater

import (
	"os"
	"testing"

	"github.com/prettymuchbryce/reportbake/internal/fs"
	"github.com/prettymuchbryce/reportbake/internal/testutil"
	"github.com/spf13/afero"
)

// countingFs counts every filesystem access made through it.
type countingFs struct {
	afero.Fs
	calls int
}

func (c *countingFs) Open(name string) (afero.File, error) {
	c.calls++
	return c.Fs.Open(name)
}

func (c *countingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	c.calls++
	return c.Fs.OpenFile(name, flag, perm)
}

func (c *countingFs) Stat(name string) (os.FileInfo, error) {
	c.calls++
	return c.Fs.Stat(name)
}

// writeReport creates <root>/<category>/reg/<crate>/<version>/<reportName> with content.
func writeReport(t *testing.T, afs afero.Fs, root, category, crate, version, reportName, content string) {
	t.Helper()
	testutil.CreateEntries(t, afs, root, testutil.Report(category, crate, version, reportName, content))
}

// makeCrate creates an empty crate directory <root>/<category>/reg/<crate>.
func makeCrate(t *testing.T, afs afero.Fs, root, category, crate string) {
	t.Helper()
	testutil.CreateEntries(t, afs, root, testutil.Crate(category, crate))
}

// readManifest decodes the manifest written at path.
func readManifest(t *testing.T, filesystem fs.FileSystem, path string) *Manifest {
	t.Helper()
	data, err := afero.ReadFile(filesystem, path)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	m := NewManifest()
	if err := m.UnmarshalJSON(data); err != nil {
		t.Fatalf("failed to decode manifest: %v", err)
	}
	return m
}
