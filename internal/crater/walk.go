package crater

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/prettymuchbryce/reportbake/internal/fs"
	"github.com/prettymuchbryce/reportbake/internal/report"
	"github.com/spf13/afero"
)

// RegDir is the subdirectory of each category that holds crate directories.
const RegDir = "reg"

// Walker traverses a report tree of the form <root>/<category>/reg/<crate>/
// and records a result for every crate.
type Walker struct {
	fs         afero.Fs
	root       string
	classifier *Classifier
	reporter   report.Reporter
	exclude    []string
}

// NewWalker creates a Walker with the given dependencies.
// If reporter is nil, NullReporter is used.
func NewWalker(afs afero.Fs, root string, classifier *Classifier, reporter report.Reporter) *Walker {
	if reporter == nil {
		reporter = report.NullReporter{}
	}
	return &Walker{
		fs:         afs,
		root:       root,
		classifier: classifier,
		reporter:   reporter,
	}
}

// SetExclude sets doublestar patterns matched against crate names.
// Matching crates are skipped and never recorded.
func (w *Walker) SetExclude(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	w.exclude = patterns
	return nil
}

// Walk visits every category and crate in listing order and records results into m.
// The first error aborts the walk. m may hold partial results afterwards and
// must not be emitted.
func (w *Walker) Walk(m *Manifest) error {
	isDir, err := fs.IsDir(w.fs, w.root)
	if err != nil {
		return fmt.Errorf("%s: %w", w.root, err)
	}
	if !isDir {
		return fmt.Errorf("%s: %w", w.root, ErrReportDirMissing)
	}

	categories, err := fs.ReadDirNames(w.fs, w.root)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", w.root, ErrReportDirMissing, err)
	}

	for _, category := range categories {
		if err := w.walkCategory(category, m); err != nil {
			return err
		}
	}
	return nil
}

// walkCategory records every crate under <root>/<category>/reg.
func (w *Walker) walkCategory(category string, m *Manifest) error {
	if !utf8.ValidString(category) {
		return fmt.Errorf("category %q: %w", category, ErrInvalidName)
	}

	slog.Debug("checking category", "category", category)
	w.reporter.StartCategory(category)

	regPath := filepath.Join(w.root, category, RegDir)
	isDir, err := fs.IsDir(w.fs, regPath)
	if err != nil {
		return fmt.Errorf("category %q: %w", category, err)
	}
	if !isDir {
		return fmt.Errorf("category %q: %s: %w", category, regPath, ErrNotRegressionDir)
	}

	crates, err := fs.ReadDirNames(w.fs, regPath)
	if err != nil {
		return fmt.Errorf("category %q: %s: %w: %w", category, regPath, ErrNotRegressionDir, err)
	}

	for _, crate := range crates {
		if !utf8.ValidString(crate) {
			return fmt.Errorf("category %q: crate_name %q: %w", category, crate, ErrInvalidName)
		}

		w.reporter.VisitCrate(crate)

		if pattern, ok := w.excluded(crate); ok {
			slog.Debug("excluding crate", "category", category, "crate", crate, "pattern", pattern)
			w.reporter.SkipCrate(crate, "excluded by "+pattern)
			continue
		}

		result, err := w.classifier.Classify(category, filepath.Join(regPath, crate))
		if err != nil {
			return fmt.Errorf("category %q: crate %q: %w", category, crate, err)
		}

		if prev, ok := m.Get(crate); ok {
			slog.Debug("crate recorded twice, keeping latest", "crate", crate, "previous", prev.Kind, "latest", result.Kind)
		}
		m.Record(crate, result)
		w.reporter.RecordResult(crate, string(result.Kind))
	}

	n := w.reporter.EndCategory()
	slog.Debug("category done", "category", category, "crates", len(crates), "recorded", n)
	return nil
}

// excluded returns the first exclude pattern matching crate.
func (w *Walker) excluded(crate string) (string, bool) {
	for _, p := range w.exclude {
		// Patterns are validated in SetExclude
		if doublestar.MatchUnvalidated(p, crate) {
			return p, true
		}
	}
	return "", false
}
