package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vmunix/plexdigest/internal/config"
	"github.com/vmunix/plexdigest/internal/digest"
	"github.com/vmunix/plexdigest/internal/plex"
	"github.com/vmunix/plexdigest/internal/runner"
	"github.com/vmunix/plexdigest/internal/webhook"
)

var _ digest.Catalog = (*plex.Client)(nil)

type digestOptions struct {
	ConfigPath string
	Verbose    bool
	DryRun     bool
}

// runDigest loads config, connects to Plex, builds the report and posts it.
// stdout gets the webhook status line, or the report itself on a dry run.
// Every failure is returned as a *runner.StageError.
func runDigest(ctx context.Context, opts digestOptions, stdout, stderr io.Writer) error {
	cfg, logger, err := setup(opts.ConfigPath, opts.Verbose, stderr)
	if err != nil {
		return err
	}

	client, id, err := plex.Connect(ctx, cfg.Digest.Host, cfg.Digest.Token, logger)
	if err != nil {
		return &runner.StageError{Stage: runner.StageConnect, Err: err}
	}
	logger.Info("connected to plex", "server", id.Name, "version", id.Version)

	var sink runner.Deliverer
	if !opts.DryRun {
		sink = webhook.New(cfg.Digest.Webhook, logger)
	}

	out, err := runner.NewRunner(client, sink, runner.Config{
		Username: cfg.Digest.Username,
		DryRun:   opts.DryRun,
	}, logger).Run(ctx)
	if err != nil {
		return err
	}

	if opts.DryRun {
		_, _ = io.WriteString(stdout, out.Report)
		return nil
	}
	_, _ = fmt.Fprintln(stdout, out.Result.Status)
	return nil
}

// setup resolves and loads the config and builds the logger from it.
func setup(path string, verbose bool, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return nil, nil, &runner.StageError{Stage: runner.StageConfig, Err: err}
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, &runner.StageError{Stage: runner.StageConfig, Err: err}
	}

	level := parseLogLevel(cfg.Digest.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("config loaded", "path", path)

	return cfg, logger, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
