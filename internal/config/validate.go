// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// placeholderToken is the token value shipped in the example config.
const placeholderToken = "your-plex-token"

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
// The username is not checked: it is sent verbatim, even when empty.
func (c *Config) Validate() []string {
	var errs []string
	d := c.Digest

	if d.Token == "" || d.Token == placeholderToken {
		errs = append(errs, "config.token: required")
	}

	if d.Host == "" {
		errs = append(errs, "config.host: required")
	} else if err := checkHTTPURL(d.Host); err != nil {
		errs = append(errs, fmt.Sprintf("config.host: %v", err))
	}

	if d.Webhook == "" {
		errs = append(errs, "config.webhook: required")
	} else if err := checkHTTPURL(d.Webhook); err != nil {
		errs = append(errs, fmt.Sprintf("config.webhook: %v", err))
	}

	if !validLogLevels[d.LogLevel] {
		errs = append(errs, fmt.Sprintf("config.log_level: must be one of debug, info, warn, error; got %q", d.LogLevel))
	}

	return errs
}

func checkHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an http or https URL, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
