package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/plexdigest/internal/library"
	"github.com/vmunix/plexdigest/internal/plex"
	"github.com/vmunix/plexdigest/internal/runner"
)

var librariesCmd = &cobra.Command{
	Use:   "libraries",
	Short: "List Plex libraries and whether they are summarized",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibraries(cmd.Context(), configPath, verbose, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(librariesCmd)
}

func runLibraries(ctx context.Context, path string, verbose bool, stdout, stderr io.Writer) error {
	cfg, logger, err := setup(path, verbose, stderr)
	if err != nil {
		return err
	}

	client, id, err := plex.Connect(ctx, cfg.Digest.Host, cfg.Digest.Token, logger)
	if err != nil {
		return &runner.StageError{Stage: runner.StageConnect, Err: err}
	}

	libs, err := client.Libraries(ctx)
	if err != nil {
		return &runner.StageError{Stage: runner.StageTraverse, Err: fmt.Errorf("list libraries: %w", err)}
	}

	printLibraries(stdout, id, libs)
	return nil
}

func printLibraries(w io.Writer, id *plex.Identity, libs []library.Library) {
	_, _ = fmt.Fprintf(w, "Plex: %s (%s)\n\n", id.Name, id.Version)

	if len(libs) == 0 {
		_, _ = fmt.Fprintln(w, "No libraries found")
		return
	}

	for _, lib := range libs {
		status := "summarized"
		if lib.Kind == library.KindOther {
			status = "skipped"
		}
		_, _ = fmt.Fprintf(w, "  %-24s %-6s %-8s %s\n", lib.Title, lib.Kind, lib.Type, status)
	}
}
