// Package autodoc provides domain types for CI-driven documentation generation.
package autodoc

import (
	"context"
	"fmt"
	"time"
)

// OutputMode selects what kind of documentation a run produces.
type OutputMode string

// Output modes.
const (
	// ModeInline augments changed source files with documentation comments in place.
	ModeInline OutputMode = "inline"
	// ModeOpenAPI regenerates a standalone OpenAPI specification from one source file.
	ModeOpenAPI OutputMode = "openapi"
)

// ParseOutputMode converts a string into an OutputMode.
func ParseOutputMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case ModeInline:
		return ModeInline, nil
	case ModeOpenAPI:
		return ModeOpenAPI, nil
	}
	return "", fmt.Errorf("unknown output mode %q (want %q or %q)", s, ModeInline, ModeOpenAPI)
}

// FileDiff pairs a repository-relative file path with the verbatim diff text
// for that file, each line terminated by a newline.
type FileDiff struct {
	Path string
	Diff string
}

// Partition is the per-file decomposition of a combined unified diff.
// Files appear in order of first appearance in the source diff.
type Partition struct {
	Files []FileDiff
}

// Paths returns the file paths in partition order.
func (p *Partition) Paths() []string {
	paths := make([]string, len(p.Files))
	for i, f := range p.Files {
		paths[i] = f.Path
	}
	return paths
}

// Get returns the diff text for a path and whether the path is present.
func (p *Partition) Get(path string) (string, bool) {
	for _, f := range p.Files {
		if f.Path == path {
			return f.Diff, true
		}
	}
	return "", false
}

// Repository is a remote entity keyed by an owner-qualified name ("owner/repo").
type Repository struct {
	ID        int       `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RunInfo is returned by the service when a run is registered. Languages maps
// each recognized file path to its language tag; submitted paths absent from
// the map are unsupported and must be skipped.
type RunInfo struct {
	ID        int               `json:"run_id"`
	Languages map[string]string `json:"file_path_to_language"`
}

// GenerateRequest carries the inputs for one per-file generation call.
// Changes is only set in inline mode, where the file's diff provides context.
type GenerateRequest struct {
	Mode        OutputMode
	FileContent string
	Language    string
	Changes     string
}

// Generation is the result of one per-file generation call.
type Generation struct {
	Content    string `json:"documented_content"`
	TokensUsed int    `json:"tokens_used"`
}

// Explanation is a natural-language summary of a whole change set.
type Explanation struct {
	Text       string `json:"explanation"`
	TokensUsed int    `json:"tokens_used"`
}

// Outcome distinguishes the two non-error terminations of a run.
type Outcome int

// Run outcomes.
const (
	// OutcomeCompleted means documentation was generated and the summary artifact written.
	OutcomeCompleted Outcome = iota
	// OutcomeNoChanges means the service returned byte-identical content for
	// every file; no explanation was requested and no summary was written.
	OutcomeNoChanges
)

// Result describes a run that reached a non-error termination. The run ID is
// always set: a Result only exists once registration succeeded.
type Result struct {
	RunID      int
	Outcome    Outcome
	TokensUsed int
	Processed  []string // paths documented, in partition order
	Skipped    []string // submitted paths the service did not recognize
}

// Cost returns the advisory cost estimate for the run's token usage.
func (r *Result) Cost() float64 {
	return Cost(r.TokensUsed)
}

// CostPer1KTokens is the advisory linear rate for token accounting.
const CostPer1KTokens = 0.03

// Cost converts a token count into a dollar estimate.
func Cost(tokens int) float64 {
	return float64(tokens) / 1000 * CostPer1KTokens
}

// RunError reports a failure that occurred after a run was registered: remote
// state exists for RunID and has been marked Failed. Failures before
// registration are returned unwrapped, since there is nothing to report against.
type RunError struct {
	RunID int
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run %d failed: %v", e.RunID, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// FileStat summarizes the line changes for one file in a diff.
type FileStat struct {
	Path    string
	Added   int
	Deleted int
}

// Client is the boundary to the remote documentation service.
type Client interface {
	// ListRepositories returns all repositories visible to the API key.
	ListRepositories(ctx context.Context) ([]Repository, error)
	// CreateRepository registers a new repository by owner-qualified name.
	CreateRepository(ctx context.Context, name string) (*Repository, error)
	// CreateRun registers a documentation run for the given file paths and
	// returns the run ID plus the subset of paths the service supports.
	CreateRun(ctx context.Context, repoID int, actionURL string, filePaths []string) (*RunInfo, error)
	// Generate requests documentation for a single file.
	Generate(ctx context.Context, runID int, filePath string, req GenerateRequest) (*Generation, error)
	// Explain requests a natural-language summary of the whole change set.
	Explain(ctx context.Context, runID int, mode OutputMode, changes string) (*Explanation, error)
	// MarkSucceeded reports the terminal Succeeded status with a pull request URL.
	MarkSucceeded(ctx context.Context, runID int, pullRequestURL string) error
	// MarkFailed reports the terminal Failed status with an error message.
	MarkFailed(ctx context.Context, runID int, message string) error
}

// DiffOptions selects what GitRunner.Diff reports.
type DiffOptions struct {
	Cached bool   // diff staged changes instead of the working tree
	Path   string // restrict the diff to one path; empty means all tracked changes
}

// GitRunner provides the two git operations the orchestrator depends on.
type GitRunner interface {
	// Diff returns the textual diff of current changes.
	Diff(ctx context.Context, opts DiffOptions) (string, error)
	// Add stages a file so untracked content becomes diffable.
	Add(ctx context.Context, path string) error
}

// StatsParser derives per-file change statistics from unified diff text.
type StatsParser interface {
	Stats(diff string) ([]FileStat, error)
}

// Reporter receives progress events for operator-facing output.
type Reporter interface {
	// DiffSummary reports the shape of the incoming change set.
	DiffSummary(stats []FileStat)
	// SkipFile reports a submitted path the service does not support.
	SkipFile(path string)
	// FileDocumented reports a successful per-file generation.
	FileDocumented(path string, tokensUsed int)
	// NoChanges reports that generation produced no textual changes.
	NoChanges()
	// ExplanationGenerated reports a successful explanation call.
	ExplanationGenerated(tokensUsed int)
	// Done reports the final result of a run.
	Done(result *Result)
}
