package store

import (
	"context"
	"fmt"

	"github.com/phrazzld/task-api/internal/domain"
)

// UnavailableTaskStore stands in for a backend that could not be set up.
// Every operation, Ping included, fails with an error wrapping
// ErrUnavailable and the setup failure, so the server can keep running and
// answer each request with a server error.
type UnavailableTaskStore struct {
	cause error
}

var _ TaskStore = (*UnavailableTaskStore)(nil)

// NewUnavailableTaskStore returns a store whose operations all fail with cause.
func NewUnavailableTaskStore(cause error) *UnavailableTaskStore {
	return &UnavailableTaskStore{cause: cause}
}

func (s *UnavailableTaskStore) fail(operation string) error {
	err := ErrUnavailable
	if s.cause != nil {
		err = fmt.Errorf("%w: %w", ErrUnavailable, s.cause)
	}
	return NewStoreError("task", operation, "not connected", err)
}

// List implements TaskStore.
func (s *UnavailableTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return nil, s.fail("list")
}

// GetByID implements TaskStore.
func (s *UnavailableTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return nil, s.fail("get")
}

// Create implements TaskStore.
func (s *UnavailableTaskStore) Create(ctx context.Context, task *domain.Task) error {
	return s.fail("create")
}

// Update implements TaskStore.
func (s *UnavailableTaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return nil, s.fail("update")
}

// Delete implements TaskStore.
func (s *UnavailableTaskStore) Delete(ctx context.Context, id string) error {
	return s.fail("delete")
}

// Ping implements TaskStore.
func (s *UnavailableTaskStore) Ping(ctx context.Context) error {
	return s.fail("ping")
}
