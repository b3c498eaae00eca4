package autodoc

import (
	"errors"
	"fmt"
	"strings"
)

// fileHeaderPrefix starts every per-file block in a unified git diff.
const fileHeaderPrefix = "diff --git"

// ErrMalformedDiff is returned when diff input does not start with a
// "diff --git" file header.
var ErrMalformedDiff = errors.New("malformed diff: expected a 'diff --git' header")

// PartitionDiff splits the lines of a combined unified diff into per-file
// blocks keyed by each header's "b/" path. Lines are appended verbatim to the
// current file's block, each followed by a newline; the block contents are
// never interpreted beyond the file headers. If the same path recurs in a
// later header its lines append to the existing block.
func PartitionDiff(lines []string) (*Partition, error) {
	p := &Partition{}
	index := make(map[string]int)
	cur := -1

	for _, line := range lines {
		if strings.HasPrefix(line, fileHeaderPrefix) {
			_, path, ok := strings.Cut(line, " b/")
			if !ok {
				return nil, fmt.Errorf("%w, got %q", ErrMalformedDiff, line)
			}
			i, seen := index[path]
			if !seen {
				i = len(p.Files)
				index[path] = i
				p.Files = append(p.Files, FileDiff{Path: path})
			}
			cur = i
		}
		if cur < 0 {
			return nil, fmt.Errorf("%w, got %q", ErrMalformedDiff, line)
		}
		p.Files[cur].Diff += line + "\n"
	}

	return p, nil
}
