package api

import (
	"log/slog"
	"net/http"

	"github.com/tastypoint/account-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger.With("component", "auth_handler"),
	}
}

// Login handles the /api/auth/login endpoint.
// An unknown username and a wrong password produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.userService.Authenticate(r.Context(), service.AuthenticateRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newAuthResponse(resp))
}

// Register handles the /api/auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, newUserResponse(user))
}
