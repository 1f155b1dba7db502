package report

// Reporter provides progress and summary output for a bake run.
// Implementations can format output as tree-style text, JSON, etc.
type Reporter interface {
	// Start begins the run for the given report file name
	Start(reportName string)

	// StartCategory begins reporting for a category directory
	StartCategory(name string)

	// VisitCrate records that a crate directory is about to be classified
	VisitCrate(name string)

	// RecordResult records the classified outcome of the current crate.
	// outcome is the result variant name, e.g. "BuildFail".
	RecordResult(crate string, outcome string)

	// SkipCrate records a crate that was not classified
	SkipCrate(crate string, reason string)

	// EndCategory finishes reporting for the current category.
	// Returns the number of crates recorded in it.
	EndCategory() int

	// Finish prints the run summary after the manifest was written to outputPath.
	Finish(outputPath string)
}

// CrateEntry describes one crate visited within a category.
type CrateEntry struct {
	Name    string
	Outcome string // Result variant name, empty when skipped
	Reason  string // Skip reason
}

// CategorySummary holds everything recorded for a single category.
type CategorySummary struct {
	Name   string
	Crates []CrateEntry
}

// Recorded returns the number of crates with a recorded outcome.
func (c CategorySummary) Recorded() int {
	n := 0
	for _, e := range c.Crates {
		if e.Outcome != "" {
			n++
		}
	}
	return n
}
