// Package console renders run progress for CI logs using Lipgloss styling.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/autodoc"
)

// Compile-time interface verification.
var _ autodoc.Reporter = (*Reporter)(nil)

// Reporter writes human-readable progress lines to a writer.
type Reporter struct {
	w io.Writer

	path    lipgloss.Style
	dim     lipgloss.Style
	ok      lipgloss.Style
	summary lipgloss.Style
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		w:       w,
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // blue
		dim:     lipgloss.NewStyle().Faint(true),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
		summary: lipgloss.NewStyle().Bold(true),
	}
}

// DiffSummary reports the shape of the incoming change set.
func (r *Reporter) DiffSummary(stats []autodoc.FileStat) {
	var added, deleted int
	for _, s := range stats {
		added += s.Added
		deleted += s.Deleted
	}
	fmt.Fprintf(r.w, "%d changed file(s), +%d -%d\n", len(stats), added, deleted)
	for _, s := range stats {
		fmt.Fprintf(r.w, "  %s %s\n", r.path.Render(s.Path), r.dim.Render(fmt.Sprintf("+%d -%d", s.Added, s.Deleted)))
	}
}

// SkipFile reports a submitted path the service does not support.
func (r *Reporter) SkipFile(path string) {
	fmt.Fprintln(r.w, r.dim.Render(fmt.Sprintf("Skipping %s as it is not a supported file type.", path)))
}

// FileDocumented reports a successful per-file generation.
func (r *Reporter) FileDocumented(path string, tokensUsed int) {
	fmt.Fprintf(r.w, "%s documented %s (tokens: %d, cost: $%.2f)\n",
		r.ok.Render("✓"), r.path.Render(path), tokensUsed, autodoc.Cost(tokensUsed))
}

// NoChanges reports that generation produced no textual changes.
func (r *Reporter) NoChanges() {
	fmt.Fprintln(r.w, "No changes were made. Exiting!")
}

// ExplanationGenerated reports a successful explanation call.
func (r *Reporter) ExplanationGenerated(tokensUsed int) {
	fmt.Fprintf(r.w, "%s generated explanation (tokens: %d, cost: $%.2f)\n",
		r.ok.Render("✓"), tokensUsed, autodoc.Cost(tokensUsed))
}

// Done reports the final result of a run.
func (r *Reporter) Done(result *autodoc.Result) {
	fmt.Fprintln(r.w, r.summary.Render(
		fmt.Sprintf("Run %d: %d file(s) documented, %d skipped, total tokens: %d, cost: $%.2f",
			result.RunID, len(result.Processed), len(result.Skipped), result.TokensUsed, result.Cost())))
}
