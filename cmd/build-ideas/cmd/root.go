package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/notbuiltyet/build-ideas/core"
	"github.com/notbuiltyet/build-ideas/core/utils"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the build-ideas command. --verbose lowers level to debug.
func NewRootCmd(stderr io.Writer, level *slog.LevelVar) *cobra.Command {
	var (
		output  string
		apiURL  string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "build-ideas",
		Short: "Build ideas.json from vetted GitHub issues",
		Long: `build-ideas fetches every issue labeled "vetted" from the repository named
by GITHUB_REPOSITORY, parses the idea template in each body and writes the
ranked list, together with the being-built and launched counts, as JSON.

GITHUB_TOKEN and GITHUB_REPOSITORY must be set, either in the environment or
in a .env file in the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose && level != nil {
				level.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := core.LoadConfig()
			if err != nil {
				return err
			}
			cfg.OutputPath = output
			if apiURL != "" {
				cfg.APIBaseURL = apiURL
			}
			return core.Run(cmd.Context(), cfg)
		},
	}

	rootCmd.SetErr(stderr)
	rootCmd.Flags().StringVarP(&output, "output", "o", core.DefaultOutputPath, "path of the generated JSON file")
	rootCmd.Flags().StringVar(&apiURL, "api-url", utils.DefaultGitHubAPIURL, "GitHub REST API base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd
}

// Run executes the command with args and returns the process exit code.
// Logging goes to stderr from the start, so flag errors are reported there too.
func Run(ctx context.Context, args []string, stderr io.Writer) int {
	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	rootCmd := NewRootCmd(stderr, level)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("build-ideas failed", "error", err)
		return 1
	}
	return 0
}

// Execute runs the command with the process arguments and exits.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stderr))
}
