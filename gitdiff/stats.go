// Package gitdiff derives change statistics using bluekeyes/go-gitdiff.
package gitdiff

import (
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/autodoc"
)

// Compile-time interface verification.
var _ autodoc.StatsParser = (*Parser)(nil)

// Parser computes per-file line statistics from unified diff text.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Stats parses diff text and returns added/deleted line counts per file, in
// diff order. The partitioner treats diff bodies as opaque; this structured
// pass exists only for operator-facing reporting.
func (p *Parser) Stats(diff string) ([]autodoc.FileStat, error) {
	files, _, err := gitdiff.Parse(strings.NewReader(diff))
	if err != nil {
		return nil, err
	}

	stats := make([]autodoc.FileStat, 0, len(files))
	for _, f := range files {
		stat := autodoc.FileStat{Path: f.NewName}
		if stat.Path == "" {
			// Deleted files carry only the old name.
			stat.Path = f.OldName
		}
		for _, frag := range f.TextFragments {
			stat.Added += int(frag.LinesAdded)
			stat.Deleted += int(frag.LinesDeleted)
		}
		stats = append(stats, stat)
	}

	return stats, nil
}
