package crater

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/prettymuchbryce/reportbake/internal/fs"
	"github.com/spf13/afero"
)

// Classifier decides the BuildResult of a single crate directory.
type Classifier struct {
	fs         afero.Fs
	reportName string
}

// NewClassifier creates a Classifier that reads reportName from each crate's version directory.
func NewClassifier(afs afero.Fs, reportName string) *Classifier {
	return &Classifier{
		fs:         afs,
		reportName: reportName,
	}
}

// ReportName returns the report file name read for non-success categories.
func (c *Classifier) ReportName() string {
	return c.reportName
}

// Classify returns the result for the crate at crateDir found under category.
//
// Success categories return immediately without touching the filesystem.
// Otherwise the first entry of crateDir (in listing order, which is not
// guaranteed to be any particular version) is taken as the version directory
// and its report file is read.
func (c *Classifier) Classify(category string, crateDir string) (BuildResult, error) {
	cat, err := ParseCategory(category)
	if err != nil {
		return BuildResult{}, err
	}

	if cat.IsSuccess() {
		return Success(), nil
	}

	versions, err := fs.ReadDirNames(c.fs, crateDir)
	if err != nil {
		return BuildResult{}, fmt.Errorf("listing versions for crate %q: %w", crateDir, err)
	}
	if len(versions) == 0 {
		return BuildResult{}, fmt.Errorf("crate %q: %w", crateDir, ErrNoVersion)
	}
	version := versions[0]
	if len(versions) > 1 {
		slog.Debug("multiple versions found, using first listed", "crate", crateDir, "version", version, "count", len(versions))
	}

	reportPath := filepath.Join(crateDir, version, c.reportName)
	data, err := afero.ReadFile(c.fs, reportPath)
	if err != nil {
		return BuildResult{}, fmt.Errorf("reading content for crate %q: %w", crateDir, err)
	}
	if !utf8.Valid(data) {
		return BuildResult{}, fmt.Errorf("reading content for crate %q: %s: %w", crateDir, reportPath, ErrNotText)
	}

	kind, err := cat.Kind()
	if err != nil {
		return BuildResult{}, err
	}
	result, err := newResult(kind, string(data))
	if err != nil {
		return BuildResult{}, fmt.Errorf("category %q: %w", cat, err)
	}
	return result, nil
}
