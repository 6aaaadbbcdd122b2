package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/plexdigest/internal/config"
)

type initOptions struct {
	Force    bool
	Host     string
	Token    string
	Webhook  string
	Username string
}

var initOpts initOptions

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example config file",
	Long: `Writes an example config.toml. Without a path the file goes to
$XDG_CONFIG_HOME/plexdigest/config.toml.

With no value flags the example references PLEX_TOKEN, PLEX_HOST and
PLEXDIGEST_WEBHOOK from the environment. Any of --host, --token, --webhook
or --username writes those values directly instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath()
		if len(args) > 0 {
			path = args[0]
		}
		return runInit(path, initOpts, cmd.Flags().Changed, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().BoolVar(&initOpts.Force, "force", false, "Overwrite an existing config file")
	initCmd.Flags().StringVar(&initOpts.Host, "host", "http://localhost:32400", "Plex server URL")
	initCmd.Flags().StringVar(&initOpts.Token, "token", "", "Plex token")
	initCmd.Flags().StringVar(&initOpts.Webhook, "webhook", "", "Webhook URL")
	initCmd.Flags().StringVar(&initOpts.Username, "username", "Plex", "Name shown on webhook messages")
	rootCmd.AddCommand(initCmd)
}

// runInit writes the config at path. changed reports whether a flag was
// given explicitly; any explicit value flag switches to a filled-in config.
func runInit(path string, opts initOptions, changed func(string) bool, w io.Writer) error {
	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	explicit := false
	for _, name := range []string{"host", "token", "webhook", "username"} {
		if changed(name) {
			explicit = true
			break
		}
	}

	if !explicit {
		if err := config.WriteDefault(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Wrote %s\n", path)
		_, _ = fmt.Fprintln(w, "Set PLEX_TOKEN and PLEXDIGEST_WEBHOOK, then run 'plexdigest config test'.")
		return nil
	}

	cfg := &config.Config{
		Digest: config.DigestConfig{
			Token:    opts.Token,
			Host:     opts.Host,
			Webhook:  opts.Webhook,
			Username: opts.Username,
			LogLevel: "info",
		},
	}
	if err := cfg.Write(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Wrote %s\n", path)

	if errs := cfg.Validate(); len(errs) > 0 {
		_, _ = fmt.Fprintln(w, "\nStill to fill in:")
		for _, e := range errs {
			_, _ = fmt.Fprintf(w, "  - %s\n", e)
		}
	}
	return nil
}
