package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/notbuiltyet/build-ideas/core/utils"
)

// Environment variables read by LoadConfig.
const (
	EnvToken      = "GITHUB_TOKEN"
	EnvRepository = "GITHUB_REPOSITORY"
)

// DefaultOutputPath is where Run writes the document unless told otherwise.
const DefaultOutputPath = "ideas.json"

// ErrMissingConfig reports that a required environment value is unset.
var ErrMissingConfig = errors.New("missing " + EnvToken + " or " + EnvRepository + " env vars")

// Config holds everything a build run needs.
type Config struct {
	// Token is the GitHub access token sent as a bearer credential.
	Token string
	// Repository is the "owner/name" of the tracker repository.
	Repository string
	// APIBaseURL is the GitHub REST root; empty means utils.DefaultGitHubAPIURL.
	APIBaseURL string
	// OutputPath is the file the document is written to.
	OutputPath string
}

// LoadConfig reads the token and repository from the environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Token:      strings.TrimSpace(os.Getenv(EnvToken)),
		Repository: strings.TrimSpace(os.Getenv(EnvRepository)),
		APIBaseURL: utils.DefaultGitHubAPIURL,
		OutputPath: DefaultOutputPath,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("Configuration loaded", "repo", cfg.Repository)
	return cfg, nil
}

// Validate checks that both required values are present and that the
// repository looks like "owner/name".
func (c *Config) Validate() error {
	if c == nil || c.Token == "" || c.Repository == "" {
		return ErrMissingConfig
	}
	owner, name, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid %s %q: expected owner/repo", EnvRepository, c.Repository)
	}
	return nil
}
