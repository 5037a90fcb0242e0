package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastypoint/account-api/internal/api"
	apiMiddleware "github.com/tastypoint/account-api/internal/api/middleware"
	"github.com/tastypoint/account-api/internal/config"
	"github.com/tastypoint/account-api/internal/mocks"
	"github.com/tastypoint/account-api/internal/service"
	"github.com/tastypoint/account-api/internal/service/auth"
)

// testServer bundles a fully wired router over in-memory mocks.
type testServer struct {
	router http.Handler
}

// newTestServer builds the same route layout the real server uses, with
// the service running over the mock store and runner.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	runner := mocks.NewMockTxRunner()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	tokens, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:            "test-jwt-secret-at-least-32-chars!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userService := service.NewUserService(userStore, runner, hasher, tokens, logger)

	authHandler := api.NewAuthHandler(userService, logger)
	userHandler := api.NewUserHandler(userService, logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Use(apiMiddleware.NewTraceMiddleware(logger))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/users", userHandler.ListUsers)
			r.Get("/users/{id}", userHandler.GetUser)
			r.Put("/users/{id}", userHandler.UpdateUser)
			r.Delete("/users/{id}", userHandler.DeleteUser)
		})
	})

	return &testServer{router: r}
}

// do performs a request against the test router and returns the recorder.
func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account through the API and returns its decoded response.
func (ts *testServer) register(t *testing.T, username, password string) map[string]interface{} {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":   username,
		"password":   password,
		"first_name": "Test",
		"last_name":  "User",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decodeBody(t, rec)
}

// login authenticates through the API and returns the issued token.
func (ts *testServer) login(t *testing.T, username, password string) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
