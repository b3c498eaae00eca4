package mock

import (
	"context"

	"github.com/fwojciec/autodoc"
)

// Compile-time interface verification.
var _ autodoc.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of autodoc.GitRunner.
type GitRunner struct {
	DiffFn func(ctx context.Context, opts autodoc.DiffOptions) (string, error)
	AddFn  func(ctx context.Context, path string) error
}

func (g *GitRunner) Diff(ctx context.Context, opts autodoc.DiffOptions) (string, error) {
	return g.DiffFn(ctx, opts)
}

func (g *GitRunner) Add(ctx context.Context, path string) error {
	return g.AddFn(ctx, path)
}
