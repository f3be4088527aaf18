// Package repository defines error values shared across repositories.
// These sentinels let higher layers distinguish failure scenarios without
// inspecting driver-specific errors: the service layer maps ErrNotFound and
// ErrDuplicate into its own taxonomy before anything reaches a handler.
package repository

import "errors"

// ErrNotFound is returned when a lookup or keyed mutation matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert or update trips a UNIQUE index,
// such as registering a username or email that already exists.
var ErrDuplicate = errors.New("duplicate record")
