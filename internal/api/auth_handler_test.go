package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		ts := newTestServer(t)

		body := ts.register(t, "alice", "long-enough-pw")
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, float64(1), body["id"])
		assert.NotContains(t, body, "hashed_password",
			"the stored hash must never travel over the wire")
		assert.NotContains(t, body, "password")
	})

	t.Run("duplicate username returns conflict", func(t *testing.T) {
		ts := newTestServer(t)
		ts.register(t, "alice", "long-enough-pw")

		rec := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"username": "alice",
			"password": "another-long-pw",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Username is already taken", decodeBody(t, rec)["error"])
	})

	t.Run("validation failure returns bad request", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"username": "alice",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body returns bad request", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/auth/register", "", "not an object")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("successful login returns token and projection", func(t *testing.T) {
		ts := newTestServer(t)
		ts.register(t, "alice", "long-enough-pw")

		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "alice",
			"password": "long-enough-pw",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "alice", body["username"])
		assert.NotEmpty(t, body["token"])
		assert.NotContains(t, body, "hashed_password")
	})

	t.Run("wrong password returns unauthorized", func(t *testing.T) {
		ts := newTestServer(t)
		ts.register(t, "alice", "long-enough-pw")

		rec := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "alice",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Username or password is incorrect", decodeBody(t, rec)["error"])
	})

	t.Run("unknown username is indistinguishable from wrong password", func(t *testing.T) {
		ts := newTestServer(t)
		ts.register(t, "alice", "long-enough-pw")

		wrongPass := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "alice",
			"password": "wrong",
		})
		unknownUser := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "never-registered",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
		assert.Equal(t,
			decodeBody(t, wrongPass)["error"],
			decodeBody(t, unknownUser)["error"],
			"status and message must not reveal whether the username exists")
	})
}
