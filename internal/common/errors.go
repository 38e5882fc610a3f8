// Package common defines sentinel errors and small helpers shared across
// pocketauth packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrUnknownStoreDriver = errors.New("unknown store driver")

	// Account/session errors.
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Persisted data that could not be interpreted.
	ErrMalformedRecord = errors.New("malformed record")
)
