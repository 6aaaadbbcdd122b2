package config

import (
	"slices"
	"strings"
)

// Error reports everything wrong with one config file: variables that
// could not be substituted and fields that failed validation. Validation
// only runs once every variable resolved, so a missing token is reported
// as its variable rather than as an empty field.
type Error struct {
	Path    string
	Missing []string
	Errors  []string
}

func (e *Error) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	b.WriteString(e.Path)
	if len(e.Missing) > 0 {
		missing := slices.Clone(e.Missing)
		slices.Sort(missing)
		b.WriteString(": missing environment variables: ")
		b.WriteString(strings.Join(missing, ", "))
	}
	if len(e.Errors) > 0 {
		b.WriteString(": validation failed:")
		for _, msg := range e.Errors {
			b.WriteString("\n  - ")
			b.WriteString(msg)
		}
	}
	return b.String()
}

// HasErrors returns true if there are any errors.
func (e *Error) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
