// Package runner drives a documentation run from a partitioned diff to a
// terminal status report.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/autodoc"
	"github.com/fwojciec/autodoc/fs"
)

// DefaultSummaryFile is where the change explanation is written for use as a
// pull request body.
const DefaultSummaryFile = "pr-body.txt"

// Runner executes one documentation run: repository resolution, run
// registration, per-file generation with write-back, change detection,
// explanation, and terminal status reporting. Files are processed one at a
// time in partition order; a failure after registration is reported to the
// service as Failed before being returned.
type Runner struct {
	Client   autodoc.Client
	Git      autodoc.GitRunner
	Reporter autodoc.Reporter

	// Dir is the working tree root all file paths are relative to.
	// Empty means the process working directory.
	Dir string

	RepoName  string // owner-qualified repository name ("owner/repo")
	ActionURL string // URL of the CI run that triggered this invocation
	Mode      autodoc.OutputMode

	// SpecFile is the OpenAPI specification output path. Only used in
	// OpenAPI mode, where it may or may not already exist.
	SpecFile string

	// SummaryFile overrides DefaultSummaryFile when set.
	SummaryFile string
}

// modeOps is the per-mode capability table: how to build a generation request,
// where to write the generated content, and how to detect resulting changes.
// Adding an output mode means adding one entry here.
type modeOps struct {
	request func(r *Runner, f autodoc.FileDiff, content, language string) autodoc.GenerateRequest
	target  func(r *Runner, f autodoc.FileDiff) string
	changes func(ctx context.Context, r *Runner, targetExisted bool) (string, error)
}

var modeTable = map[autodoc.OutputMode]modeOps{
	autodoc.ModeInline: {
		request: func(r *Runner, f autodoc.FileDiff, content, language string) autodoc.GenerateRequest {
			return autodoc.GenerateRequest{
				Mode:        autodoc.ModeInline,
				FileContent: content,
				Language:    language,
				Changes:     f.Diff,
			}
		},
		target: func(r *Runner, f autodoc.FileDiff) string {
			return f.Path
		},
		changes: func(ctx context.Context, r *Runner, targetExisted bool) (string, error) {
			return r.Git.Diff(ctx, autodoc.DiffOptions{})
		},
	},
	autodoc.ModeOpenAPI: {
		request: func(r *Runner, f autodoc.FileDiff, content, language string) autodoc.GenerateRequest {
			// The whole file is the unit of regeneration; no diff context.
			return autodoc.GenerateRequest{
				Mode:        autodoc.ModeOpenAPI,
				FileContent: content,
				Language:    language,
			}
		},
		target: func(r *Runner, f autodoc.FileDiff) string {
			return r.SpecFile
		},
		changes: func(ctx context.Context, r *Runner, targetExisted bool) (string, error) {
			if targetExisted {
				return r.Git.Diff(ctx, autodoc.DiffOptions{})
			}
			// A freshly created spec file is untracked and invisible to
			// git diff until staged.
			if err := r.Git.Add(ctx, r.SpecFile); err != nil {
				return "", err
			}
			return r.Git.Diff(ctx, autodoc.DiffOptions{Cached: true, Path: r.SpecFile})
		},
	},
}

// Run executes the run for the given partition. Failures before run
// registration return a plain error; failures after registration are reported
// to the service as Failed and returned as *autodoc.RunError.
func (r *Runner) Run(ctx context.Context, partition *autodoc.Partition) (*autodoc.Result, error) {
	ops, ok := modeTable[r.Mode]
	if !ok {
		return nil, fmt.Errorf("unknown output mode %q", r.Mode)
	}

	targetExisted := false
	if r.Mode == autodoc.ModeOpenAPI {
		_, err := os.Stat(r.path(r.SpecFile))
		targetExisted = err == nil
	}

	repoID, err := r.resolveRepository(ctx)
	if err != nil {
		return nil, err
	}

	info, err := r.Client.CreateRun(ctx, repoID, r.ActionURL, partition.Paths())
	if err != nil {
		return nil, err
	}

	result := &autodoc.Result{RunID: info.ID}
	if err := r.process(ctx, ops, partition, info, targetExisted, result); err != nil {
		if markErr := r.Client.MarkFailed(ctx, info.ID, err.Error()); markErr != nil {
			err = fmt.Errorf("%w (reporting the failed status also failed: %v)", err, markErr)
		}
		return nil, &autodoc.RunError{RunID: info.ID, Err: err}
	}

	r.Reporter.Done(result)
	return result, nil
}

// resolveRepository finds the repository by exact name match, creating it if
// absent.
func (r *Runner) resolveRepository(ctx context.Context) (int, error) {
	repos, err := r.Client.ListRepositories(ctx)
	if err != nil {
		return 0, err
	}
	for _, repo := range repos {
		if repo.Name == r.RepoName {
			return repo.ID, nil
		}
	}
	created, err := r.Client.CreateRepository(ctx, r.RepoName)
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *Runner) process(ctx context.Context, ops modeOps, partition *autodoc.Partition, info *autodoc.RunInfo, targetExisted bool, result *autodoc.Result) error {
	for _, f := range partition.Files {
		language, ok := info.Languages[f.Path]
		if !ok {
			r.Reporter.SkipFile(f.Path)
			result.Skipped = append(result.Skipped, f.Path)
			continue
		}

		content, err := os.ReadFile(r.path(f.Path))
		if err != nil {
			return err
		}

		gen, err := r.Client.Generate(ctx, result.RunID, f.Path, ops.request(r, f, string(content), language))
		if err != nil {
			return err
		}
		result.TokensUsed += gen.TokensUsed

		if err := fs.WriteFileAtomic(r.path(ops.target(r, f)), []byte(gen.Content), 0o644); err != nil {
			return err
		}
		result.Processed = append(result.Processed, f.Path)
		r.Reporter.FileDocumented(f.Path, gen.TokensUsed)
	}

	// The service may return byte-identical content, so check whether any
	// textual change actually landed on disk.
	changes, err := ops.changes(ctx, r, targetExisted)
	if err != nil {
		return err
	}
	if changes == "" {
		r.Reporter.NoChanges()
		result.Outcome = autodoc.OutcomeNoChanges
		return nil
	}

	exp, err := r.Client.Explain(ctx, result.RunID, r.Mode, changes)
	if err != nil {
		return err
	}
	result.TokensUsed += exp.TokensUsed
	r.Reporter.ExplanationGenerated(exp.TokensUsed)

	summary := r.SummaryFile
	if summary == "" {
		summary = DefaultSummaryFile
	}
	if err := fs.WriteFileAtomic(r.path(summary), []byte(exp.Text), 0o644); err != nil {
		return err
	}

	result.Outcome = autodoc.OutcomeCompleted
	return nil
}

func (r *Runner) path(p string) string {
	if r.Dir == "" {
		return p
	}
	return filepath.Join(r.Dir, p)
}
