package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the environment variable that overrides discovery.
const EnvConfigPath = "PLEXDIGEST_CONFIG"

const systemPath = "/etc/plexdigest/config.toml"

// DefaultPath returns the per-user config path under $XDG_CONFIG_HOME,
// falling back to ~/.config. It is where init writes by default.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "plexdigest", "config.toml")
}

// SearchPaths lists the locations Discover checks after $PLEXDIGEST_CONFIG,
// in order.
func SearchPaths() []string {
	return []string{"config.toml", DefaultPath(), systemPath}
}

// Discover returns the config file to use. $PLEXDIGEST_CONFIG wins and must
// exist; otherwise the first existing entry of SearchPaths is used.
func Discover() (string, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, envPath, err)
		}
		return envPath, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("config not found, checked: %s (run 'plexdigest init' to create one)", strings.Join(paths, ", "))
}
