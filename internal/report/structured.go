package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/xlab/treeprint"
)

// Styles for the structured reporter
var (
	bannerStyle   = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // Cyan
	pathStyle     = lipgloss.NewStyle().Bold(true)
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	skipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // Gray
)

const (
	passIcon = "✓"
	failIcon = "✗"
	skipIcon = "⊘"
)

// StructuredReporter prints a progress line per crate and a tree summary at the end.
type StructuredReporter struct {
	w       io.Writer
	verbose bool

	categories []CategorySummary
	current    *CategorySummary
	progress   bool // a carriage-return progress line is pending
}

// NewStructured creates a new StructuredReporter.
func NewStructured(verbose bool) *StructuredReporter {
	return &StructuredReporter{
		w:       os.Stdout,
		verbose: verbose,
	}
}

// NewStructuredWithWriter creates a StructuredReporter writing to a custom writer.
func NewStructuredWithWriter(w io.Writer, verbose bool) *StructuredReporter {
	return &StructuredReporter{
		w:       w,
		verbose: verbose,
	}
}

// Start prints the banner.
func (r *StructuredReporter) Start(reportName string) {
	fmt.Fprintf(r.w, "%s %s\n", bannerStyle.Render("Baking JSON 🥐"), detailStyle.Render("(report: "+reportName+")"))
}

// StartCategory begins reporting for a category.
func (r *StructuredReporter) StartCategory(name string) {
	r.endProgress()
	r.categories = append(r.categories, CategorySummary{Name: name})
	r.current = &r.categories[len(r.categories)-1]
	fmt.Fprintf(r.w, "%s\n", categoryStyle.Render("Checking "+name))
}

// VisitCrate overwrites the progress line with the crate name.
func (r *StructuredReporter) VisitCrate(name string) {
	fmt.Fprintf(r.w, "\r\033[K%s %q", detailStyle.Render("Checking"), name)
	r.progress = true
}

// RecordResult records the outcome for crate in the current category.
func (r *StructuredReporter) RecordResult(crate string, outcome string) {
	if r.current == nil {
		return
	}
	r.current.Crates = append(r.current.Crates, CrateEntry{Name: crate, Outcome: outcome})
}

// SkipCrate records a crate that was not classified.
func (r *StructuredReporter) SkipCrate(crate string, reason string) {
	if r.current == nil {
		return
	}
	r.current.Crates = append(r.current.Crates, CrateEntry{Name: crate, Reason: reason})
}

// EndCategory finishes the current category.
func (r *StructuredReporter) EndCategory() int {
	r.endProgress()
	if r.current == nil {
		return 0
	}
	n := r.current.Recorded()
	r.current = nil
	return n
}

// Finish prints the summary tree.
func (r *StructuredReporter) Finish(outputPath string) {
	r.endProgress()

	tree := treeprint.NewWithRoot(pathStyle.Render(outputPath))
	for _, c := range r.categories {
		branch := tree.AddBranch(r.formatCategory(c))
		if !r.verbose {
			continue
		}
		for _, e := range c.Crates {
			branch.AddNode(r.formatCrate(e))
		}
	}

	fmt.Fprint(r.w, tree.String())
	fmt.Fprintln(r.w, r.formatTotals())
}

// Categories returns the recorded per-category summaries.
func (r *StructuredReporter) Categories() []CategorySummary {
	return r.categories
}

// endProgress terminates a pending progress line.
func (r *StructuredReporter) endProgress() {
	if r.progress {
		fmt.Fprintln(r.w)
		r.progress = false
	}
}

// formatCategory renders a category header with per-outcome counts.
func (r *StructuredReporter) formatCategory(c CategorySummary) string {
	counts := make(map[string]int)
	skipped := 0
	for _, e := range c.Crates {
		if e.Outcome == "" {
			skipped++
			continue
		}
		counts[e.Outcome]++
	}

	outcomes := make([]string, 0, len(counts))
	for o := range counts {
		outcomes = append(outcomes, o)
	}
	sort.Strings(outcomes)

	result := categoryStyle.Render(c.Name) + ":"
	for _, o := range outcomes {
		result += fmt.Sprintf(" %s %d", outcomeStyle(o).Render(o), counts[o])
	}
	if skipped > 0 {
		result += " " + skipStyle.Render(fmt.Sprintf("%s %d skipped", skipIcon, skipped))
	}
	if len(c.Crates) == 0 {
		result += " " + detailStyle.Render("(empty)")
	}
	return result
}

// formatCrate renders a single crate node.
func (r *StructuredReporter) formatCrate(e CrateEntry) string {
	if e.Outcome == "" {
		status := skipStyle.Render(skipIcon) + " " + e.Name
		if e.Reason != "" {
			status += " " + detailStyle.Render("("+e.Reason+")")
		}
		return status
	}

	icon := failStyle.Render(failIcon)
	if e.Outcome == "Success" {
		icon = passStyle.Render(passIcon)
	}
	return fmt.Sprintf("%s %s %s", icon, e.Name, detailStyle.Render(e.Outcome))
}

// formatTotals renders the crate counts across all categories.
func (r *StructuredReporter) formatTotals() string {
	recorded, skipped := 0, 0
	for _, c := range r.categories {
		n := c.Recorded()
		recorded += n
		skipped += len(c.Crates) - n
	}

	result := fmt.Sprintf("%d crates in %d categories", recorded, len(r.categories))
	if skipped > 0 {
		result += fmt.Sprintf(", %d skipped", skipped)
	}
	return detailStyle.Render(result)
}

func outcomeStyle(outcome string) lipgloss.Style {
	switch outcome {
	case "Success":
		return passStyle
	case "TestSkipped":
		return skipStyle
	default:
		return failStyle
	}
}

// NullReporter is a no-op reporter for when output is disabled.
type NullReporter struct{}

func (NullReporter) Start(reportName string)                   {}
func (NullReporter) StartCategory(name string)                 {}
func (NullReporter) VisitCrate(name string)                    {}
func (NullReporter) RecordResult(crate string, outcome string) {}
func (NullReporter) SkipCrate(crate string, reason string)     {}
func (NullReporter) EndCategory() int                          { return 0 }
func (NullReporter) Finish(outputPath string)                  {}
