package store

import (
	"context"
	"database/sql"

	"github.com/tastypoint/account-api/internal/domain"
)

// UserStore defines the interface for user account persistence.
// Reads are non-blocking relative to the caller; writes performed through
// a transaction-bound store (see WithTx) only become durable when the
// surrounding transaction commits.
type UserStore interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by their exact username.
	// The comparison is case-sensitive.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsername reports whether a user with the exact username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// List returns all users in storage order.
	List(ctx context.Context) ([]*domain.User, error)

	// Create saves a new user and assigns its storage ID.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// Update modifies an existing user. The caller must provide a complete
	// user object including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrUsernameExists if updating to a username that is taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a UserStore bound to the provided transaction so that
	// multiple operations can be staged inside a single commit boundary.
	// The transaction is created and managed by the caller (typically via
	// a TxRunner).
	WithTx(tx *sql.Tx) UserStore
}
