// Package service provides the application-level account service that
// composes the user store, the unit-of-work boundary, the password
// hasher and the token service.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors callers check with errors.Is().
var (
	// ErrInvalidCredentials indicates that authentication input does not
	// correspond to a valid account and password pair. The same error,
	// with the same message, covers both an unknown username and a wrong
	// password so callers cannot enumerate usernames.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("username or password is incorrect")

	// ErrPersistence indicates that a repository write or transaction
	// commit failed. The wrapped message carries the underlying cause
	// text but never the raw driver error value.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrPersistence = errors.New("persistence failure")
)

// persistenceError wraps a storage failure into ErrPersistence. The cause
// is rendered with %v so its message is carried without exposing the
// underlying error type to errors.Is/errors.As.
func persistenceError(op string, err error) error {
	return fmt.Errorf("%w while %s: %v", ErrPersistence, op, err)
}
