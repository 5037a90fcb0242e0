package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tastypoint/account-api/internal/api"
	"github.com/tastypoint/account-api/internal/service"
	"github.com/tastypoint/account-api/internal/service/auth"
	"github.com/tastypoint/account-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"wrapped not found", fmt.Errorf("context: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"persistence failure", service.ErrPersistence, http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Run("storage error text never leaks", func(t *testing.T) {
		cause := errors.New("pq: connection refused on 10.0.0.1:5432")
		wrapped := fmt.Errorf("%w while saving the user: %v", service.ErrPersistence, cause)

		msg := api.GetSafeErrorMessage(wrapped)
		assert.Equal(t, "Failed to save changes", msg)
		assert.NotContains(t, msg, "10.0.0.1")
	})

	t.Run("known kinds map to stable messages", func(t *testing.T) {
		assert.Equal(t, "Username or password is incorrect",
			api.GetSafeErrorMessage(service.ErrInvalidCredentials))
		assert.Equal(t, "User not found",
			api.GetSafeErrorMessage(store.ErrUserNotFound))
		assert.Equal(t, "Username is already taken",
			api.GetSafeErrorMessage(store.ErrUsernameExists))
	})

	t.Run("unknown errors get a generic message", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred",
			api.GetSafeErrorMessage(errors.New("stack trace here")))
	})
}
