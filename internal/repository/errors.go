// Package repository holds persistence access for all record types plus the
// sentinel errors shared across repositories. Sentinels let services and
// handlers distinguish failure scenarios without inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUsername is returned when a username is already taken. It is
// produced both by the service-level pre-check and by the unique index
// backstop, which closes the check-then-act window between them.
var ErrDuplicateUsername = errors.New("username already exists")
