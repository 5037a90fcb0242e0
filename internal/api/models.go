package api

import (
	"time"

	"github.com/tastypoint/account-api/internal/domain"
	"github.com/tastypoint/account-api/internal/service"
)

// Common request/response structures

// LoginRequest defines the payload for the authentication endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=60"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username  string `json:"username"   validate:"required,max=60"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"max=60"`
	LastName  string `json:"last_name"  validate:"max=60"`
}

// UpdateUserRequest defines the payload for the user update endpoint.
// All fields are optional; omitted or empty fields are left unchanged.
// An empty password keeps the stored hash.
type UpdateUserRequest struct {
	Username  string `json:"username"   validate:"omitempty,max=60"`
	Password  string `json:"password"   validate:"omitempty,min=8,max=72"`
	FirstName string `json:"first_name" validate:"max=60"`
	LastName  string `json:"last_name"  validate:"max=60"`
}

// AuthResponse defines the successful response for the login endpoint.
// It is a projection of the account plus the issued token; the stored
// password hash is never included.
type AuthResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Token     string `json:"token"`
}

// UserResponse is the wire projection of a user account.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// newUserResponse maps a domain user onto the wire projection.
// Field-by-field on purpose: the hash must never travel.
func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// newAuthResponse maps a service authentication result onto the wire shape.
func newAuthResponse(resp *service.AuthenticateResponse) AuthResponse {
	return AuthResponse{
		ID:        resp.ID,
		Username:  resp.Username,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Token:     resp.Token,
	}
}
