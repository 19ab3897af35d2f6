// Package repository contains data access logic separated from HTTP
// handlers.  This file defines sentinel errors shared across the
// repositories so handlers can map failures to specific HTTP responses.
package repository

import "errors"

// ErrUserNotFound is returned when a username has no matching users row.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when an insert collides with the unique
// username index.
var ErrUsernameExists = errors.New("username already exists")

// ErrNameExists is returned when a program name collides with the unique
// name index.
var ErrNameExists = errors.New("name already exists")

// ErrNotFound is returned by lookups and deletes that match no row.
var ErrNotFound = errors.New("not found")
