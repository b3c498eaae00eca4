package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fwojciec/autodoc"
	"github.com/fwojciec/autodoc/config"
	"github.com/fwojciec/autodoc/console"
	"github.com/fwojciec/autodoc/fs"
	"github.com/fwojciec/autodoc/git"
	"github.com/fwojciec/autodoc/gitdiff"
	"github.com/fwojciec/autodoc/runllm"
	"github.com/fwojciec/autodoc/runner"
	"github.com/joho/godotenv"
	cli "github.com/urfave/cli/v3"
)

func main() {
	// Local runs may keep credentials in a .env file; CI sets real env vars.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &cli.Command{
		Name:  "autodoc",
		Usage: "Generate documentation for changed files via the RunLLM service",
		Commands: []*cli.Command{
			runCmd(),
			completeCmd(),
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Document the files changed in a diff and write a PR summary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server-address", Usage: "Address of the RunLLM server"},
			&cli.StringFlag{Name: "api-key", Usage: "API key for the RunLLM server", Sources: cli.EnvVars("RUNLLM_API_KEY")},
			&cli.StringFlag{Name: "mode", Usage: "Output mode ('inline' or 'openapi')"},
			&cli.StringFlag{Name: "diffs-file", Usage: "File containing the git diff of changes"},
			&cli.StringFlag{Name: "input-api-file", Usage: "API source file to generate an OpenAPI spec from (openapi mode)"},
			&cli.StringFlag{Name: "output-openapi-file", Usage: "OpenAPI spec file to write, existing or not (openapi mode)"},
			&cli.StringFlag{Name: "summary-file", Usage: "Where to write the change explanation (default pr-body.txt)"},
			&cli.StringFlag{Name: "config", Usage: "Optional defaults file", Value: ".autodoc.yml"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := &config.Config{
				ServerAddress: cmd.String("server-address"),
				APIKey:        cmd.String("api-key"),
				RepoName:      os.Getenv("GITHUB_REPO_NAME"),
				ActionURL:     os.Getenv("GH_ACTION_URL"),
				Mode:          autodoc.OutputMode(cmd.String("mode")),
				DiffsFile:     cmd.String("diffs-file"),
				InputAPIFile:  cmd.String("input-api-file"),
				OutputSpec:    cmd.String("output-openapi-file"),
				SummaryFile:   cmd.String("summary-file"),
				EnvFile:       os.Getenv("GITHUB_ENV"),
			}
			defaults, err := config.LoadFileDefaults(cmd.String("config"))
			if err != nil {
				return err
			}
			defaults.Apply(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(ctx, cfg)
		},
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	data, err := os.ReadFile(cfg.DiffsFile)
	if err != nil {
		return err
	}

	partition, err := autodoc.PartitionDiff(splitLines(data))
	if err != nil {
		return err
	}

	if cfg.Mode == autodoc.ModeOpenAPI {
		// The spec source is the single unit of regeneration; narrow the
		// submission to just that file.
		diff, ok := partition.Get(cfg.InputAPIFile)
		if !ok {
			return fmt.Errorf("OpenAPI spec source file %s was not changed", cfg.InputAPIFile)
		}
		partition = &autodoc.Partition{Files: []autodoc.FileDiff{{Path: cfg.InputAPIFile, Diff: diff}}}
	}

	reporter := console.NewReporter(os.Stdout)
	if stats, err := gitdiff.NewParser().Stats(string(data)); err == nil {
		// Advisory only; the diff body stays opaque to the run itself.
		reporter.DiffSummary(stats)
	}

	r := &runner.Runner{
		Client:      runllm.NewClient(cfg.ServerAddress, cfg.APIKey),
		Git:         git.NewRunner(""),
		Reporter:    reporter,
		RepoName:    cfg.RepoName,
		ActionURL:   cfg.ActionURL,
		Mode:        cfg.Mode,
		SpecFile:    cfg.OutputSpec,
		SummaryFile: cfg.SummaryFile,
	}

	result, err := r.Run(ctx, partition)
	if err != nil {
		return err
	}

	if cfg.EnvFile != "" {
		// Propagate the run ID to subsequent CI steps.
		if err := fs.AppendEnv(cfg.EnvFile, "AUTODOC_RUN_ID", strconv.Itoa(result.RunID)); err != nil {
			return err
		}
	}
	return nil
}

func completeCmd() *cli.Command {
	return &cli.Command{
		Name:  "complete",
		Usage: "Mark a run as Succeeded once its pull request exists",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server-address", Usage: "Address of the RunLLM server", Required: true},
			&cli.StringFlag{Name: "api-key", Usage: "API key for the RunLLM server", Sources: cli.EnvVars("RUNLLM_API_KEY"), Required: true},
			&cli.IntFlag{Name: "run-id", Usage: "The run to mark completed", Required: true},
			&cli.StringFlag{Name: "pr-url", Usage: "URL of the pull request", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client := runllm.NewClient(cmd.String("server-address"), cmd.String("api-key"))
			return client.MarkSucceeded(ctx, int(cmd.Int("run-id")), cmd.String("pr-url"))
		},
	}
}

// splitLines breaks the raw diff file into lines without trailing newlines.
func splitLines(data []byte) []string {
	s := strings.TrimRight(string(data), "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
