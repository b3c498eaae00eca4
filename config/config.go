// Package config builds the immutable process configuration for a run.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/autodoc"
	"gopkg.in/yaml.v3"
)

// Config carries everything a run needs, assembled once at process entry.
// The core packages receive it by parameter and never read ambient process
// state themselves.
type Config struct {
	ServerAddress string
	APIKey        string
	RepoName      string // owner-qualified, e.g. "acme/api" (GITHUB_REPO_NAME)
	ActionURL     string // URL of the triggering CI run (GH_ACTION_URL)
	Mode          autodoc.OutputMode
	DiffsFile     string // path of the file holding the combined git diff
	InputAPIFile  string // OpenAPI mode: the API source file to regenerate from
	OutputSpec    string // OpenAPI mode: the specification file to write
	SummaryFile   string // summary artifact path; empty means the default
	EnvFile       string // GitHub env propagation file (GITHUB_ENV); may be empty
}

// Validate reports the first missing or inconsistent value.
func (c *Config) Validate() error {
	switch {
	case c.ServerAddress == "":
		return errors.New("server address is required")
	case c.APIKey == "":
		return errors.New("api key is required")
	case c.RepoName == "":
		return errors.New("GITHUB_REPO_NAME environment variable must be set")
	case c.ActionURL == "":
		return errors.New("GH_ACTION_URL environment variable must be set")
	case c.DiffsFile == "":
		return errors.New("diffs file is required")
	}
	if _, err := autodoc.ParseOutputMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Mode == autodoc.ModeOpenAPI && (c.InputAPIFile == "" || c.OutputSpec == "") {
		return errors.New("both input-api-file and output-openapi-file must be provided for openapi mode")
	}
	return nil
}

// FileDefaults are optional per-repository defaults read from .autodoc.yml.
// Flags and environment values take precedence over the file.
type FileDefaults struct {
	ServerAddress string `yaml:"server_address"`
	Mode          string `yaml:"mode"`
	InputAPIFile  string `yaml:"input_api_file"`
	OutputSpec    string `yaml:"output_openapi_file"`
	SummaryFile   string `yaml:"summary_file"`
}

// LoadFileDefaults reads defaults from path. A missing file is not an error
// and yields zero defaults.
func LoadFileDefaults(path string) (*FileDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &FileDefaults{}, nil
		}
		return nil, err
	}
	var d FileDefaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &d, nil
}

// Apply fills empty Config fields from the file defaults.
func (d *FileDefaults) Apply(c *Config) {
	if c.ServerAddress == "" {
		c.ServerAddress = d.ServerAddress
	}
	if c.Mode == "" {
		c.Mode = autodoc.OutputMode(d.Mode)
	}
	if c.InputAPIFile == "" {
		c.InputAPIFile = d.InputAPIFile
	}
	if c.OutputSpec == "" {
		c.OutputSpec = d.OutputSpec
	}
	if c.SummaryFile == "" {
		c.SummaryFile = d.SummaryFile
	}
}
