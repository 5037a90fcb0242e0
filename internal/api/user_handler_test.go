package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEndpoints_RequireAuthentication(t *testing.T) {
	ts := newTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/users", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/users", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListUsersEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice", "long-enough-pw")
	ts.register(t, "bob", "long-enough-pw")
	token := ts.login(t, "alice", "long-enough-pw")

	rec := ts.do(t, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0]["username"])
	assert.Equal(t, "bob", users[1]["username"])
	assert.NotContains(t, users[0], "hashed_password")
}

func TestGetUserEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice", "long-enough-pw")
	token := ts.login(t, "alice", "long-enough-pw")

	t.Run("existing user", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/users/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", decodeBody(t, rec)["username"])
	})

	t.Run("missing user returns not found", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/users/999", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
	})

	t.Run("non-numeric id returns bad request", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/users/abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateUserEndpoint(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		ts := newTestServer(t)
		ts.register(t, "alice", "long-enough-pw")
		token := ts.login(t, "alice", "long-enough-pw")

		rec := ts.do(t, http.MethodPut, "/api/users/1", token, map[string]string{
			"first_name": "Alicia",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Alicia", body["first_name"])
		assert.Equal(t, "alice", body["username"], "unspecified fields stay unchanged")
	})

	t.Run("rename to a taken username returns conflict", func(t *testing.T) {
		ts := newTestServer(t)
		ts.register(t, "alice", "long-enough-pw")
		ts.register(t, "bob", "long-enough-pw")
		token := ts.login(t, "bob", "long-enough-pw")

		rec := ts.do(t, http.MethodPut, "/api/users/2", token, map[string]string{
			"username": "alice",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("password change takes effect on next login", func(t *testing.T) {
		ts := newTestServer(t)
		ts.register(t, "alice", "long-enough-pw")
		token := ts.login(t, "alice", "long-enough-pw")

		rec := ts.do(t, http.MethodPut, "/api/users/1", token, map[string]string{
			"password": "brand-new-password",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		old := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "alice",
			"password": "long-enough-pw",
		})
		assert.Equal(t, http.StatusUnauthorized, old.Code)

		ts.login(t, "alice", "brand-new-password")
	})

	t.Run("missing user returns not found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.register(t, "alice", "long-enough-pw")
		token := ts.login(t, "alice", "long-enough-pw")

		rec := ts.do(t, http.MethodPut, "/api/users/999", token, map[string]string{
			"first_name": "X",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteUserEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice", "long-enough-pw")
	ts.register(t, "bob", "long-enough-pw")
	token := ts.login(t, "alice", "long-enough-pw")

	rec := ts.do(t, http.MethodDelete, "/api/users/2", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/users/2", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/users/2", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
