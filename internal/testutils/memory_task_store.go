package testutils

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// MemoryTaskStore is a store.TaskStore kept in process memory. It enforces
// the same invariants as the database backends and returns tasks in
// insertion order. Identifiers are UUIDs; any other string is rejected as
// malformed.
type MemoryTaskStore struct {
	mu      sync.RWMutex
	order   []string
	tasks   map[string]domain.Task
	PingErr error
}

var _ store.TaskStore = (*MemoryTaskStore)(nil)

// NewMemoryTaskStore returns an empty store.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[string]domain.Task)}
}

func parseID(operation, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return store.NewStoreError("task", operation, "malformed id",
			fmt.Errorf("%w: %q", store.ErrInvalidID, id))
	}
	return nil
}

// List implements store.TaskStore.
func (s *MemoryTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Task, 0, len(s.order))
	for _, id := range s.order {
		t := s.tasks[id]
		out = append(out, &t)
	}
	return out, nil
}

// GetByID implements store.TaskStore.
func (s *MemoryTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if err := parseID("get", id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &t, nil
}

// Create implements store.TaskStore.
func (s *MemoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return store.NewStoreError("task", "create", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = uuid.NewString()
	s.tasks[task.ID] = *task
	s.order = append(s.order, task.ID)
	return nil
}

// Update implements store.TaskStore.
func (s *MemoryTaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := parseID("update", task.ID); err != nil {
		return nil, err
	}
	if err := task.Validate(); err != nil {
		return nil, store.NewStoreError("task", "update", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return nil, store.ErrTaskNotFound
	}
	s.tasks[task.ID] = *task
	updated := *task
	return &updated, nil
}

// Delete implements store.TaskStore.
func (s *MemoryTaskStore) Delete(ctx context.Context, id string) error {
	if err := parseID("delete", id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ping implements store.TaskStore. It returns PingErr.
func (s *MemoryTaskStore) Ping(ctx context.Context) error {
	return s.PingErr
}

// Len returns the number of stored tasks.
func (s *MemoryTaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
