package crater

import (
	"errors"
	"log/slog"
	"time"

	"github.com/prettymuchbryce/reportbake/internal/fs"
	"github.com/prettymuchbryce/reportbake/internal/report"
)

// Options configures a single bake run.
type Options struct {
	ReportName string   // file read from each crate's version directory
	ReportDir  string   // root of the report tree
	Output     string   // manifest path
	Exclude    []string // doublestar patterns for crate names to skip
}

// Stats describes a finished bake run.
type Stats struct {
	StartTime time.Time
	Duration  time.Duration
	Crates    int
	Counts    map[Kind]int
}

// Bake walks the report tree, classifies every crate and writes the manifest.
// The manifest is written only if the whole walk succeeds.
func Bake(filesystem fs.FileSystem, opts Options, reporter report.Reporter) (*Manifest, *Stats, error) {
	if opts.ReportName == "" {
		return nil, nil, errors.New("first argument must be report name")
	}
	if reporter == nil {
		reporter = report.NullReporter{}
	}

	stats := &Stats{StartTime: time.Now()}
	slog.Info("baking manifest", "report", opts.ReportName, "dir", opts.ReportDir, "output", opts.Output)

	classifier := NewClassifier(filesystem, opts.ReportName)
	walker := NewWalker(filesystem, opts.ReportDir, classifier, reporter)
	if err := walker.SetExclude(opts.Exclude); err != nil {
		return nil, nil, err
	}

	reporter.Start(opts.ReportName)

	manifest := NewManifest()
	if err := walker.Walk(manifest); err != nil {
		return nil, nil, err
	}

	if err := Emit(filesystem, opts.Output, manifest); err != nil {
		return nil, nil, err
	}

	reporter.Finish(opts.Output)

	stats.Duration = time.Since(stats.StartTime)
	stats.Crates = manifest.Len()
	stats.Counts = manifest.Counts()
	slog.Info("manifest written", "path", opts.Output, "crates", stats.Crates, "duration", stats.Duration)

	return manifest, stats, nil
}
