package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// MockTaskID is the identifier the default Create assigns.
const MockTaskID = "mock-task-id"

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	ListFn    func(ctx context.Context) ([]*domain.Task, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.Task, error)
	CreateFn  func(ctx context.Context, task *domain.Task) error
	UpdateFn  func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, id string) error
	PingFn    func(ctx context.Context) error

	mu    sync.Mutex
	calls []string
}

var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
}

// Calls returns the names of the methods invoked so far, in order.
func (m *MockTaskStore) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// List implements store.TaskStore. Default: an empty list.
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Task{}, nil
}

// GetByID implements store.TaskStore. Default: store.ErrTaskNotFound.
func (m *MockTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

// Create implements store.TaskStore. Default: assigns MockTaskID.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	task.ID = MockTaskID
	return nil
}

// Update implements store.TaskStore. Default: echoes the task.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	updated := *task
	return &updated, nil
}

// Delete implements store.TaskStore. Default: success.
func (m *MockTaskStore) Delete(ctx context.Context, id string) error {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// Ping implements store.TaskStore. Default: healthy.
func (m *MockTaskStore) Ping(ctx context.Context) error {
	m.record("Ping")
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}
