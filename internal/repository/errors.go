// Package repository defines data access for layouts, seat assignments
// and guests. Sentinel errors declared here let handlers distinguish
// failure scenarios without inspecting driver error strings: a missing
// layout maps to HTTP 404, a duplicate guest name to 409, and a stored
// layout payload that no longer parses to 400.
package repository

import "errors"

// ErrLayoutNotFound is returned when a layout lookup yields no rows.
var ErrLayoutNotFound = errors.New("layout not found")

// ErrGuestNotFound is returned when a guest lookup yields no rows.
var ErrGuestNotFound = errors.New("guest not found")

// ErrGuestNameExists is returned when creating a guest whose name
// collides case-insensitively with an existing row.
var ErrGuestNameExists = errors.New("guest name already exists")
