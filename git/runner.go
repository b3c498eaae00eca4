// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/fwojciec/autodoc"
)

// Compile-time interface verification.
var _ autodoc.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell in a working tree.
type Runner struct {
	dir string
}

// NewRunner creates a git runner rooted at dir. An empty dir uses the
// process working directory.
func NewRunner(dir string) *Runner {
	return &Runner{dir: dir}
}

// Diff returns the textual diff of current changes.
func (r *Runner) Diff(ctx context.Context, opts autodoc.DiffOptions) (string, error) {
	args := r.baseArgs()
	args = append(args, "diff")
	if opts.Cached {
		args = append(args, "--cached")
	}
	if opts.Path != "" {
		args = append(args, "--", opts.Path)
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git diff failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git diff failed: %w", err)
	}
	return string(output), nil
}

// Add stages a file so untracked content becomes diffable.
func (r *Runner) Add(ctx context.Context, path string) error {
	args := r.baseArgs()
	args = append(args, "add", "--", path)
	cmd := exec.CommandContext(ctx, "git", args...)
	if _, err := cmd.Output(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("git add failed: %s", string(exitErr.Stderr))
		}
		return fmt.Errorf("git add failed: %w", err)
	}
	return nil
}

func (r *Runner) baseArgs() []string {
	if r.dir == "" {
		return nil
	}
	return []string{"-C", r.dir}
}
