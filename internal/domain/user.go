package domain

import (
	"errors"
	"time"
)

// Common validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooLong     = errors.New("username must be at most 60 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// maxUsernameLength mirrors the column width enforced by the users migration.
const maxUsernameLength = 60

// User represents a registered account of the TastyPoint platform.
// The ID is assigned by the storage layer on creation and remains zero
// until then. HashedPassword always holds a bcrypt hash, never a
// plaintext password.
//
// Username comparison is case-sensitive and byte-exact; the UNIQUE
// constraint on the raw username column is the final authority on
// uniqueness.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User from the given username, profile fields and an
// already-computed password hash, and validates it. The caller is
// responsible for hashing the plaintext password before calling this;
// the entity never sees plaintext.
func NewUser(username, firstName, lastName, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Username:       username,
		HashedPassword: hashedPassword,
		FirstName:      firstName,
		LastName:       lastName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User's invariants. Returns a sentinel error on the
// first violation found.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if len(u.Username) > maxUsernameLength {
		return ErrUsernameTooLong
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}
