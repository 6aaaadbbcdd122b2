package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	verbose    bool
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:   "plexdigest",
	Short: "Post a summary of your Plex libraries to a webhook",
	Long: `plexdigest - Plex library digest

Counts the movies, shows, albums and tracks in every Plex library and
posts one line per library to a Discord-style webhook.

Config is read from --config, $PLEXDIGEST_CONFIG, ./config.toml,
$XDG_CONFIG_HOME/plexdigest/config.toml or /etc/plexdigest/config.toml.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDigest(cmd.Context(), digestOptions{
			ConfigPath: configPath,
			Verbose:    verbose,
			DryRun:     dryRun,
		}, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: search standard locations)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the report instead of posting it")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("plexdigest {{.Version}}\n")
}
