package store

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Implementations must be safe for concurrent use by multiple goroutines.
type TaskStore interface {
	// List returns every stored task in the backend's natural order.
	// An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its identifier.
	// Returns ErrTaskNotFound if no task has that identifier, and an error
	// wrapping ErrInvalidID if the identifier is malformed for the backend.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// Create validates and persists a new task, assigning task.ID.
	// Returns an error wrapping ErrInvalidEntity if validation fails.
	Create(ctx context.Context, task *domain.Task) error

	// Update overwrites both the title and the completed flag of the task
	// identified by task.ID and returns the stored result.
	// Returns ErrTaskNotFound if the task does not exist and an error
	// wrapping ErrInvalidEntity if the new values fail validation.
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Delete removes a task by its identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error

	// Ping verifies that the backend is reachable.
	Ping(ctx context.Context) error
}
