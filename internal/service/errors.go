// Package service implements the credential and account operations behind
// the /users surface. Failures are reported as the sentinel errors below;
// their texts double as the wire-level error messages, so the strings are
// load-bearing and must not be reworded.
package service

import "errors"

var (
	// ErrMissingFields signals a required input that is absent or blank
	// after trimming.
	ErrMissingFields = errors.New("Missing or empty fields")
	// ErrPasswordMismatch signals a signup whose password and confirmation
	// differ.
	ErrPasswordMismatch = errors.New("Passwords do not match")
	// ErrAlreadyRegistered signals a signup (or rename) colliding with an
	// existing username or email.
	ErrAlreadyRegistered = errors.New("User already registered")
	// ErrBadCredentials covers both an unknown username and a wrong
	// password. One message for both cases, so callers cannot enumerate
	// registered usernames.
	ErrBadCredentials = errors.New("User not found or wrong password")
	// ErrUserNotFound signals a lookup or keyed mutation matching no user.
	ErrUserNotFound = errors.New("User not found")
)
