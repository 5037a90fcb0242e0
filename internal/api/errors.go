package api

import (
	"errors"
	"net/http"

	"github.com/tastypoint/account-api/internal/domain"
	"github.com/tastypoint/account-api/internal/service"
	"github.com/tastypoint/account-api/internal/service/auth"
	"github.com/tastypoint/account-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error kind. This prevents leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, domain.ErrEmptyUsername),
		errors.Is(err, domain.ErrUsernameTooLong),
		errors.Is(err, domain.ErrEmptyHashedPassword):
		return http.StatusBadRequest

	default:
		// service.ErrPersistence and anything unclassified
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for the
// error kind. Raw storage error text never reaches the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Username or password is incorrect"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username is already taken"

	case errors.Is(err, service.ErrPersistence):
		return "Failed to save changes"

	case errors.Is(err, domain.ErrEmptyUsername),
		errors.Is(err, domain.ErrUsernameTooLong),
		errors.Is(err, domain.ErrEmptyHashedPassword):
		return "Invalid user data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes the error response for a service failure,
// pairing the mapped status code with the sanitized message.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
