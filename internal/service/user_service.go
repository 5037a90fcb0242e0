package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tastypoint/account-api/internal/domain"
	"github.com/tastypoint/account-api/internal/service/auth"
	"github.com/tastypoint/account-api/internal/store"
)

// dummyHash is a valid bcrypt hash compared against when authentication
// targets an unknown username, so that the miss costs roughly the same
// as a password mismatch and response timing does not reveal whether the
// account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthenticateRequest carries the credentials presented for
// authentication. It is transient and never persisted.
type AuthenticateRequest struct {
	Username string
	Password string
}

// AuthenticateResponse is the projection of a user returned on
// successful authentication, together with the issued token. It never
// includes the stored password hash.
type AuthenticateResponse struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Token     string
}

// RegisterRequest carries the input for creating a new account.
type RegisterRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// UpdateRequest carries a partial update for an existing account.
// Empty fields are left unchanged; in particular, an empty Password
// keeps the stored hash untouched.
type UpdateRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// UserService provides account lifecycle and authentication operations.
type UserService interface {
	// Authenticate verifies the supplied credentials and, on success,
	// returns the account projection with a freshly issued token.
	// Returns ErrInvalidCredentials when the username is unknown or the
	// password does not verify; the two cases are indistinguishable.
	Authenticate(ctx context.Context, req AuthenticateRequest) (*AuthenticateResponse, error)

	// List returns all accounts in repository order.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves an account by its ID.
	// Returns store.ErrUserNotFound if no such account exists.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Register creates a new account from the request, hashing the
	// plaintext password before anything is stored.
	// Returns store.ErrUsernameExists when the username is taken and
	// ErrPersistence when the write or commit fails.
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)

	// Update applies a partial update to an existing account.
	// Returns store.ErrUserNotFound if the account does not exist,
	// store.ErrUsernameExists if the requested username belongs to a
	// different account, and ErrPersistence on write or commit failure.
	Update(ctx context.Context, id int64, req UpdateRequest) (*domain.User, error)

	// Delete removes an account by its ID.
	// Returns store.ErrUserNotFound if the account does not exist and
	// ErrPersistence on write or commit failure.
	Delete(ctx context.Context, id int64) error
}

// userService implements UserService.
type userService struct {
	userStore store.UserStore
	txRunner  store.TxRunner
	hasher    auth.PasswordHasher
	tokens    auth.TokenService
	logger    *slog.Logger
}

// NewUserService creates a UserService from its collaborators.
func NewUserService(
	userStore store.UserStore,
	txRunner store.TxRunner,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	logger *slog.Logger,
) UserService {
	return &userService{
		userStore: userStore,
		txRunner:  txRunner,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger.With("component", "user_service"),
	}
}

// Authenticate implements UserService.Authenticate.
func (s *userService) Authenticate(
	ctx context.Context,
	req AuthenticateRequest,
) (*AuthenticateResponse, error) {
	user, err := s.userStore.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn a compare so the unknown-username path costs the
			// same as a wrong password.
			_ = s.hasher.Compare(dummyHash, req.Password)
			s.logger.Debug("authentication failed: unknown username",
				"username", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for authentication",
			"error", err,
			"username", req.Username)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		s.logger.Debug("authentication failed: password mismatch",
			"user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to issue token",
			"error", err,
			"user_id", user.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user authenticated successfully", "user_id", user.ID)

	return &AuthenticateResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Token:     token,
	}, nil
}

// List implements UserService.List.
func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByID implements UserService.GetByID.
func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", id)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", id)
		}
		return nil, err
	}
	return user, nil
}

// Register implements UserService.Register.
// The uniqueness precheck runs before any mutation; the UNIQUE
// constraint in storage remains the final authority, so a lost race
// still surfaces as store.ErrUsernameExists rather than a raw driver
// error.
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	exists, err := s.userStore.ExistsByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("failed to check username availability",
			"error", err,
			"username", req.Username)
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if exists {
		s.logger.Debug("attempted to register an existing username",
			"username", req.Username)
		return nil, store.ErrUsernameExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(req.Username, req.FirstName, req.LastName, hash)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("lost registration race on username",
				"username", req.Username)
			return nil, store.ErrUsernameExists
		}
		s.logger.Error("failed to save user",
			"error", err,
			"username", req.Username)
		return nil, persistenceError("saving the user", err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// Update implements UserService.Update.
// The whole read-check-write sequence runs inside one transaction so the
// uniqueness check always precedes the mutation it guards.
func (s *userService) Update(
	ctx context.Context,
	id int64,
	req UpdateRequest,
) (*domain.User, error) {
	var updated *domain.User

	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Username != "" && req.Username != user.Username {
			owner, err := txStore.GetByUsername(ctx, req.Username)
			if err == nil && owner.ID != user.ID {
				return store.ErrUsernameExists
			}
			if err != nil && !errors.Is(err, store.ErrUserNotFound) {
				return err
			}
			user.Username = req.Username
		}

		if req.Password != "" {
			hash, err := s.hasher.Hash(req.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user.HashedPassword = hash
		}

		if req.FirstName != "" {
			user.FirstName = req.FirstName
		}
		if req.LastName != "" {
			user.LastName = req.LastName
		}
		user.UpdatedAt = time.Now().UTC()

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			s.logger.Debug("attempted to update non-existent user", "user_id", id)
			return nil, store.ErrUserNotFound
		case errors.Is(err, store.ErrUsernameExists):
			s.logger.Debug("attempted to update to a taken username",
				"user_id", id,
				"username", req.Username)
			return nil, store.ErrUsernameExists
		default:
			s.logger.Error("failed to update user",
				"error", err,
				"user_id", id)
			return nil, persistenceError("updating the user", err)
		}
	}

	s.logger.Info("user updated successfully", "user_id", id)
	return updated, nil
}

// Delete implements UserService.Delete.
func (s *userService) Delete(ctx context.Context, id int64) error {
	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		return txStore.Delete(ctx, user.ID)
	})

	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("attempted to delete non-existent user", "user_id", id)
			return store.ErrUserNotFound
		}
		s.logger.Error("failed to delete user",
			"error", err,
			"user_id", id)
		return persistenceError("deleting the user", err)
	}

	s.logger.Info("user deleted successfully", "user_id", id)
	return nil
}
