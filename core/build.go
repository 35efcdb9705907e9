package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/notbuiltyet/build-ideas/core/ideas"
	"github.com/notbuiltyet/build-ideas/core/utils"
	"golang.org/x/sync/errgroup"
)

// Build fetches the vetted issues and the being-built and launched counts
// concurrently, then assembles the document. The first failing query cancels
// the others and its error is returned.
func Build(ctx context.Context, cfg *Config) (*ideas.Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := slog.With("op", "Build", "repo", cfg.Repository)
	log.Info("Fetching issues")

	var (
		vetted               []utils.Issue
		beingBuilt, launched int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vetted, err = utils.FetchLabeledIssues(gctx, cfg.APIBaseURL, cfg.Repository, ideas.LabelVetted, cfg.Token)
		return err
	})
	g.Go(func() error {
		var err error
		beingBuilt, err = utils.CountLabeledIssues(gctx, cfg.APIBaseURL, cfg.Repository, ideas.LabelBeingBuilt, cfg.Token)
		return err
	})
	g.Go(func() error {
		var err error
		launched, err = utils.CountLabeledIssues(gctx, cfg.APIBaseURL, cfg.Repository, ideas.LabelLaunched, cfg.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("Found vetted issues", "count", len(vetted), "beingBuilt", beingBuilt, "launched", launched)
	return ideas.NewDocument(vetted, beingBuilt, launched), nil
}

// Run builds the document and writes it to cfg.OutputPath. Nothing is written
// when the build fails.
func Run(ctx context.Context, cfg *Config) error {
	doc, err := Build(ctx, cfg)
	if err != nil {
		return err
	}

	path := cfg.OutputPath
	if path == "" {
		path = DefaultOutputPath
	}
	if err := WriteDocument(ctx, path, doc); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Info("Wrote ideas", "count", len(doc.Ideas), "path", path)
	return nil
}
