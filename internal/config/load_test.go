// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, `
[config]
token = "abc123"
host = "http://plex.lan:32400"
webhook = "https://discord.com/api/webhooks/1/x"
username = "Plex"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Digest.Token != "abc123" {
		t.Errorf("expected token abc123, got %s", cfg.Digest.Token)
	}
	if cfg.Digest.Host != "http://plex.lan:32400" {
		t.Errorf("expected host http://plex.lan:32400, got %s", cfg.Digest.Host)
	}
	if cfg.Digest.Username != "Plex" {
		t.Errorf("expected username Plex, got %s", cfg.Digest.Username)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("MISSING_KEY")
	cfgPath := writeConfig(t, `
[config]
token = "${MISSING_KEY}"
host = "http://localhost:32400"
webhook = "https://example.com/hook"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	if !strings.Contains(err.Error(), "MISSING_KEY") {
		t.Errorf("expected MISSING_KEY in error, got %v", err)
	}

	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if len(cfgErr.Errors) != 0 {
		t.Errorf("validation should be skipped while variables are missing, got %v", cfgErr.Errors)
	}
}

func TestLoad_RequiredEnvVarMessage(t *testing.T) {
	os.Unsetenv("PLEXDIGEST_TEST_TOKEN")
	cfgPath := writeConfig(t, `
[config]
token = "${PLEXDIGEST_TEST_TOKEN:?set your Plex token}"
host = "http://localhost:32400"
webhook = "https://example.com/hook"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing required env var")
	}
	if !strings.Contains(err.Error(), "PLEXDIGEST_TEST_TOKEN: set your Plex token") {
		t.Errorf("expected message in error, got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[config]
token = "abc123"
host = "plex.lan:32400"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "config.host") {
		t.Errorf("expected config.host in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "config.webhook: required") {
		t.Errorf("expected config.webhook in error, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfgPath := writeConfig(t, `
[config]
token = "abc123"
host = "http://localhost:32400"
webhook = "https://example.com/hook"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Digest.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Digest.LogLevel)
	}
	if cfg.Digest.Username != "" {
		t.Errorf("expected empty username to be kept, got %q", cfg.Digest.Username)
	}
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("TEST_PLEX_TOKEN", "from-env")
	cfgPath := writeConfig(t, `
[config]
token = "${TEST_PLEX_TOKEN}"
host = "http://localhost:32400"
webhook = "https://example.com/hook"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Digest.Token != "from-env" {
		t.Errorf("expected token from-env, got %s", cfg.Digest.Token)
	}
}

func TestLoad_EnvDefault(t *testing.T) {
	os.Unsetenv("TEST_PLEX_HOST")
	cfgPath := writeConfig(t, `
[config]
token = "abc123"
host = "${TEST_PLEX_HOST:-http://localhost:32400}"
webhook = "https://example.com/hook"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Digest.Host != "http://localhost:32400" {
		t.Errorf("expected default host, got %s", cfg.Digest.Host)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	cfgPath := writeConfig(t, "[config\ntoken = ")

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	os.Unsetenv("PLEXDIGEST_DOTENV_TOKEN")
	cfgPath := writeConfig(t, `
[config]
token = "${PLEXDIGEST_DOTENV_TOKEN}"
host = "http://localhost:32400"
webhook = "${PLEXDIGEST_DOTENV_HOOK}"
`)
	envPath := filepath.Join(filepath.Dir(cfgPath), EnvFile)
	dotenv := "PLEXDIGEST_DOTENV_TOKEN=from-dotenv\nPLEXDIGEST_DOTENV_HOOK=https://example.com/dotenv\n"
	if err := os.WriteFile(envPath, []byte(dotenv), 0600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("PLEXDIGEST_DOTENV_HOOK", "https://example.com/env")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Digest.Token != "from-dotenv" {
		t.Errorf("expected token from .env, got %s", cfg.Digest.Token)
	}
	if cfg.Digest.Webhook != "https://example.com/env" {
		t.Errorf("process environment should win over .env, got %s", cfg.Digest.Webhook)
	}
	if _, ok := os.LookupEnv("PLEXDIGEST_DOTENV_TOKEN"); ok {
		t.Error(".env values must not leak into the process environment")
	}
}
