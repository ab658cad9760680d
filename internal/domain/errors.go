package domain

import "errors"

// Sentinel errors returned by the application layer. Handlers map them to
// responses with errors.Is; repositories and services wrap them with context
// via fmt.Errorf("...: %w", ...).
var (
	// ErrMissingField is returned when a required input field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrNotFound is returned when a referenced id or username does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned on a duplicate username or a duplicate
	// (user, place) history pair.
	ErrAlreadyExists = errors.New("already exists")

	// ErrBadCredential is returned when authentication fails against the
	// stored credential.
	ErrBadCredential = errors.New("password is incorrect")

	// ErrUpstream is returned when the external places provider fails.
	ErrUpstream = errors.New("upstream provider error")
)
