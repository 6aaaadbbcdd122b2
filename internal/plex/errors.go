package plex

import "errors"

// Sentinel errors for the plex package.
var (
	// ErrUnauthorized is returned when the server rejects the token.
	ErrUnauthorized = errors.New("plex rejected token")

	// ErrUnexpectedStatus is returned for any other non-200 response.
	ErrUnexpectedStatus = errors.New("unexpected status")
)
