package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/tastypoint/account-api/internal/domain"
	"github.com/tastypoint/account-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// Each method can be overridden through its function field; otherwise a
// map-backed default implementation is used, with IDs assigned from an
// incrementing counter the way the real store's BIGSERIAL column would.
type MockUserStore struct {
	GetByIDFn          func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFn    func(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsernameFn func(ctx context.Context, username string) (bool, error)
	ListFn             func(ctx context.Context) ([]*domain.User, error)
	CreateFn           func(ctx context.Context, user *domain.User) error
	UpdateFn           func(ctx context.Context, user *domain.User) error
	DeleteFn           func(ctx context.Context, id int64) error

	// Data for the default implementation
	Users  map[int64]*domain.User
	NextID int64
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[int64]*domain.User),
		NextID: 1,
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, exists := m.Users[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByUsername implements the UserStore interface.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	for _, user := range m.Users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// ExistsByUsername implements the UserStore interface.
func (m *MockUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFn != nil {
		return m.ExistsByUsernameFn(ctx, username)
	}

	for _, user := range m.Users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// List implements the UserStore interface.
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	for _, existing := range m.Users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	user.ID = m.NextID
	m.NextID++
	copied := *user
	m.Users[user.ID] = &copied
	return nil
}

// Update implements the UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	if _, exists := m.Users[user.ID]; !exists {
		return store.ErrUserNotFound
	}

	for _, existing := range m.Users {
		if existing.Username == user.Username && existing.ID != user.ID {
			return store.ErrUsernameExists
		}
	}

	copied := *user
	m.Users[user.ID] = &copied
	return nil
}

// Delete implements the UserStore interface.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Users[id]; !exists {
		return store.ErrUserNotFound
	}
	delete(m.Users, id)
	return nil
}

// WithTx implements the UserStore interface. The mock has no real
// transactions, so the same store is returned.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
