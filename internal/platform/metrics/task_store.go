package metrics

import (
	"context"
	"time"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// instrumentedTaskStore records a metric for every call it forwards.
type instrumentedTaskStore struct {
	next    store.TaskStore
	metrics *Manager
}

var _ store.TaskStore = (*instrumentedTaskStore)(nil)

// InstrumentTaskStore wraps next so that every operation is counted and timed.
func InstrumentTaskStore(next store.TaskStore, m *Manager) store.TaskStore {
	return &instrumentedTaskStore{next: next, metrics: m}
}

func (s *instrumentedTaskStore) observe(operation string, start time.Time, err error) {
	s.metrics.ObserveStoreOperation(operation, err, time.Since(start))
}

func (s *instrumentedTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	start := time.Now()
	tasks, err := s.next.List(ctx)
	s.observe("list", start, err)
	return tasks, err
}

func (s *instrumentedTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	start := time.Now()
	task, err := s.next.GetByID(ctx, id)
	s.observe("get", start, err)
	return task, err
}

func (s *instrumentedTaskStore) Create(ctx context.Context, task *domain.Task) error {
	start := time.Now()
	err := s.next.Create(ctx, task)
	s.observe("create", start, err)
	return err
}

func (s *instrumentedTaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	start := time.Now()
	updated, err := s.next.Update(ctx, task)
	s.observe("update", start, err)
	return updated, err
}

func (s *instrumentedTaskStore) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.observe("delete", start, err)
	return err
}

func (s *instrumentedTaskStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.next.Ping(ctx)
	s.observe("ping", start, err)
	return err
}
