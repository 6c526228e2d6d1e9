package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

// MigratingTaskStore applies pending migrations before the first operation
// that reaches the database and retries on every later call until that
// succeeds. The server can therefore start before PostgreSQL accepts
// connections and still end up with the tasks table.
type MigratingTaskStore struct {
	next    store.TaskStore
	migrate func(ctx context.Context) error

	mu    sync.Mutex
	ready atomic.Bool
}

var _ store.TaskStore = (*MigratingTaskStore)(nil)

// NewMigratingTaskStore wraps a PostgresTaskStore on db.
func NewMigratingTaskStore(db *sql.DB, logger *slog.Logger) *MigratingTaskStore {
	return newMigratingTaskStore(NewPostgresTaskStore(db, logger), func(ctx context.Context) error {
		return Migrate(ctx, db, logger)
	})
}

func newMigratingTaskStore(next store.TaskStore, migrate func(ctx context.Context) error) *MigratingTaskStore {
	return &MigratingTaskStore{next: next, migrate: migrate}
}

// ensureSchema runs the migrations once. Concurrent callers wait for the
// attempt in flight instead of starting their own.
func (s *MigratingTaskStore) ensureSchema(ctx context.Context, operation string) error {
	if s.ready.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready.Load() {
		return nil
	}
	if err := s.migrate(ctx); err != nil {
		return store.NewStoreError("task", operation, "schema not ready", err)
	}
	s.ready.Store(true)
	return nil
}

// List implements store.TaskStore.
func (s *MigratingTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if err := s.ensureSchema(ctx, "list"); err != nil {
		return nil, err
	}
	return s.next.List(ctx)
}

// GetByID implements store.TaskStore.
func (s *MigratingTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if err := s.ensureSchema(ctx, "get"); err != nil {
		return nil, err
	}
	return s.next.GetByID(ctx, id)
}

// Create implements store.TaskStore.
func (s *MigratingTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := s.ensureSchema(ctx, "create"); err != nil {
		return err
	}
	return s.next.Create(ctx, task)
}

// Update implements store.TaskStore.
func (s *MigratingTaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := s.ensureSchema(ctx, "update"); err != nil {
		return nil, err
	}
	return s.next.Update(ctx, task)
}

// Delete implements store.TaskStore.
func (s *MigratingTaskStore) Delete(ctx context.Context, id string) error {
	if err := s.ensureSchema(ctx, "delete"); err != nil {
		return err
	}
	return s.next.Delete(ctx, id)
}

// Ping implements store.TaskStore. A store whose migrations have not been
// applied yet is not healthy, so Ping attempts them too.
func (s *MigratingTaskStore) Ping(ctx context.Context) error {
	if err := s.ensureSchema(ctx, "ping"); err != nil {
		return err
	}
	return s.next.Ping(ctx)
}
