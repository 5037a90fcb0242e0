package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastypoint/account-api/internal/service/auth"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
	assert.Error(t, hasher.Compare(hash, "wrong password"))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salted hashes of the same input must differ")
	assert.NoError(t, hasher.Compare(first, "same password"))
	assert.NoError(t, hasher.Compare(second, "same password"))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	// A malformed hash must produce an error, never a panic.
	assert.Error(t, hasher.Compare("not-a-bcrypt-hash", "anything"))
	assert.Error(t, hasher.Compare("", "anything"))
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	// A cost below bcrypt.MinCost falls back to the default cost and
	// still produces verifiable hashes.
	hasher := auth.NewBcryptHasher(0)

	hash, err := hasher.Hash("a password")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "a password"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
