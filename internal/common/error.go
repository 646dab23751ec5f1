// Package common defines shared sentinel errors used across the client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnauthenticated means an operation requiring a signed-in user was
	// attempted with no active session.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrNotFound means the remote entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the signed-in user is not allowed to mutate the
	// entity (e.g. a non-owner update attempt).
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable covers transport and server failures.
	ErrUnavailable = errors.New("server unavailable")

	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation error")
)
