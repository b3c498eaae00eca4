package mock

import "github.com/fwojciec/autodoc"

// Compile-time interface verification.
var _ autodoc.Reporter = (*Reporter)(nil)

// Reporter is a no-op recording implementation of autodoc.Reporter.
type Reporter struct {
	DiffSummaries [][]autodoc.FileStat
	Skipped       []string
	Documented    []string
	NoChangeCalls int
	ExplainTokens []int
	Results       []*autodoc.Result
}

func (r *Reporter) DiffSummary(stats []autodoc.FileStat) {
	r.DiffSummaries = append(r.DiffSummaries, stats)
}

func (r *Reporter) SkipFile(path string) {
	r.Skipped = append(r.Skipped, path)
}

func (r *Reporter) FileDocumented(path string, tokensUsed int) {
	r.Documented = append(r.Documented, path)
}

func (r *Reporter) NoChanges() {
	r.NoChangeCalls++
}

func (r *Reporter) ExplanationGenerated(tokensUsed int) {
	r.ExplainTokens = append(r.ExplainTokens, tokensUsed)
}

func (r *Reporter) Done(result *autodoc.Result) {
	r.Results = append(r.Results, result)
}
