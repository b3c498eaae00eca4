// Package mock provides mock implementations of autodoc interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/autodoc"
)

// Compile-time interface verification.
var _ autodoc.Client = (*Client)(nil)

// Client is a mock implementation of autodoc.Client.
type Client struct {
	ListRepositoriesFn func(ctx context.Context) ([]autodoc.Repository, error)
	CreateRepositoryFn func(ctx context.Context, name string) (*autodoc.Repository, error)
	CreateRunFn        func(ctx context.Context, repoID int, actionURL string, filePaths []string) (*autodoc.RunInfo, error)
	GenerateFn         func(ctx context.Context, runID int, filePath string, req autodoc.GenerateRequest) (*autodoc.Generation, error)
	ExplainFn          func(ctx context.Context, runID int, mode autodoc.OutputMode, changes string) (*autodoc.Explanation, error)
	MarkSucceededFn    func(ctx context.Context, runID int, pullRequestURL string) error
	MarkFailedFn       func(ctx context.Context, runID int, message string) error
}

func (c *Client) ListRepositories(ctx context.Context) ([]autodoc.Repository, error) {
	return c.ListRepositoriesFn(ctx)
}

func (c *Client) CreateRepository(ctx context.Context, name string) (*autodoc.Repository, error) {
	return c.CreateRepositoryFn(ctx, name)
}

func (c *Client) CreateRun(ctx context.Context, repoID int, actionURL string, filePaths []string) (*autodoc.RunInfo, error) {
	return c.CreateRunFn(ctx, repoID, actionURL, filePaths)
}

func (c *Client) Generate(ctx context.Context, runID int, filePath string, req autodoc.GenerateRequest) (*autodoc.Generation, error) {
	return c.GenerateFn(ctx, runID, filePath, req)
}

func (c *Client) Explain(ctx context.Context, runID int, mode autodoc.OutputMode, changes string) (*autodoc.Explanation, error) {
	return c.ExplainFn(ctx, runID, mode, changes)
}

func (c *Client) MarkSucceeded(ctx context.Context, runID int, pullRequestURL string) error {
	return c.MarkSucceededFn(ctx, runID, pullRequestURL)
}

func (c *Client) MarkFailed(ctx context.Context, runID int, message string) error {
	return c.MarkFailedFn(ctx, runID, message)
}
