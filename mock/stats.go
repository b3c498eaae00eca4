package mock

import "github.com/fwojciec/autodoc"

// Compile-time interface verification.
var _ autodoc.StatsParser = (*StatsParser)(nil)

// StatsParser is a mock implementation of autodoc.StatsParser.
type StatsParser struct {
	StatsFn func(diff string) ([]autodoc.FileStat, error)
}

func (p *StatsParser) Stats(diff string) ([]autodoc.FileStat, error) {
	return p.StatsFn(diff)
}
