// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvFile is read from the config file's directory. Its values fill in
// variables the process environment does not set.
const EnvFile = ".env"

// Config is the root configuration structure. Settings live under a single
// [config] table.
type Config struct {
	Digest DigestConfig `toml:"config"`
}

// DigestConfig holds the Plex connection and webhook identity.
type DigestConfig struct {
	Token    string `toml:"token"`
	Host     string `toml:"host"`
	Webhook  string `toml:"webhook"`
	Username string `toml:"username"`
	LogLevel string `toml:"log_level"`
}

// Load reads, parses and validates the configuration file.
// Unresolved environment variables and validation failures are returned
// together as an *Error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	dotenv, err := readEnvFile(filepath.Join(filepath.Dir(path), EnvFile))
	if err != nil {
		return nil, err
	}

	content, missing := expandEnv(string(data), envLookup(dotenv))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Digest.LogLevel == "" {
		cfg.Digest.LogLevel = "info"
	}

	cfgErr := &Error{Path: path, Missing: missing}
	if len(missing) == 0 {
		cfgErr.Errors = cfg.Validate()
	}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}

	return &cfg, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// readEnvFile parses a dotenv file. A missing file yields no values.
func readEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return values, nil
}

// envLookup resolves names from the process environment first, then dotenv.
func envLookup(dotenv map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := dotenv[name]
		return v, ok
	}
}

// expandEnv replaces variable references in content. It returns the
// substituted text and the references that could not be resolved; those
// are left unchanged in the text.
//
//	${VAR}            value of VAR, missing if unset
//	${VAR:-default}   value of VAR, or default if unset or empty
//	${VAR:?message}   value of VAR, missing with message if unset or empty
func expandEnv(content string, lookup func(string) (string, bool)) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := lookup(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
		}
		return value
	})
	return result, missing
}
