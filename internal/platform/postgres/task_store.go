package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     DBTX
	logger *slog.Logger
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: constructing a store without a database is a programming error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "postgres_task_store")),
	}
}

// List implements store.TaskStore. Tasks are ordered by creation time.
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, completed
		FROM tasks
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, MapError("list", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to close rows",
				slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, MapError("list", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError("list", err)
	}
	return tasks, nil
}

// GetByID implements store.TaskStore.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	taskID, err := parseUUID("get", id)
	if err != nil {
		return nil, err
	}

	var t domain.Task
	err = s.db.QueryRowContext(ctx, `
		SELECT id, title, completed
		FROM tasks
		WHERE id = $1
	`, taskID).Scan(&t.ID, &t.Title, &t.Completed)
	if err != nil {
		return nil, MapError("get", err)
	}
	return &t, nil
}

// Create implements store.TaskStore. The database assigns the identifier.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	var id string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tasks (title, completed)
		VALUES ($1, $2)
		RETURNING id
	`, task.Title, task.Completed).Scan(&id)
	if err != nil {
		return MapError("create", err)
	}

	task.ID = id
	log.Debug("task inserted", slog.String("task_id", id))
	return nil
}

// Update implements store.TaskStore. Both columns are written and the row
// as stored afterwards is returned.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	taskID, err := parseUUID("update", task.ID)
	if err != nil {
		return nil, err
	}
	if err := task.Validate(); err != nil {
		return nil, store.NewStoreError("task", "update", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	var updated domain.Task
	err = s.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET title = $2, completed = $3
		WHERE id = $1
		RETURNING id, title, completed
	`, taskID, task.Title, task.Completed).Scan(&updated.ID, &updated.Title, &updated.Completed)
	if err != nil {
		return nil, MapError("update", err)
	}
	return &updated, nil
}

// Delete implements store.TaskStore.
func (s *PostgresTaskStore) Delete(ctx context.Context, id string) error {
	taskID, err := parseUUID("delete", id)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return MapError("delete", err)
	}
	return CheckRowsAffected(result)
}

// Ping implements store.TaskStore. A transaction cannot be pinged and is
// reported healthy.
func (s *PostgresTaskStore) Ping(ctx context.Context) error {
	if p, ok := s.db.(pinger); ok {
		if err := p.PingContext(ctx); err != nil {
			return MapError("ping", err)
		}
	}
	return nil
}
