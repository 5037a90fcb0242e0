package mocks

import (
	"context"

	"github.com/tastypoint/account-api/internal/store"
)

// MockTxRunner implements store.TxRunner for testing. By default it runs
// the function with a nil transaction (the MockUserStore ignores it).
// CommitErr, when set, is returned after fn succeeds, simulating a
// commit failure with all staged writes discarded.
type MockTxRunner struct {
	RunFn     func(ctx context.Context, fn store.TxFn) error
	CommitErr error
}

// NewMockTxRunner creates a new MockTxRunner.
func NewMockTxRunner() *MockTxRunner {
	return &MockTxRunner{}
}

var _ store.TxRunner = (*MockTxRunner)(nil)

// RunInTransaction implements the TxRunner interface.
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	if m.RunFn != nil {
		return m.RunFn(ctx, fn)
	}

	if err := fn(ctx, nil); err != nil {
		return err
	}
	return m.CommitErr
}
