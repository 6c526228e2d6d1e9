package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/phrazzld/task-api/internal/store"
)

// PostgreSQL error codes
const (
	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// invalidTextRepresentationCode is raised when a value cannot be cast,
	// e.g. a malformed UUID literal.
	invalidTextRepresentationCode = "22P02"
)

// MapError maps a database error to a store error for the given operation.
// The original error stays wrapped for errors.Is/errors.As.
func MapError(operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrTaskNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case checkViolationCode:
			return store.NewStoreError("task", operation,
				fmt.Sprintf("check constraint violation (%s)", pgErr.ConstraintName),
				fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
		case notNullViolationCode:
			return store.NewStoreError("task", operation,
				fmt.Sprintf("not null violation (%s)", pgErr.ColumnName),
				fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
		case invalidTextRepresentationCode:
			return store.NewStoreError("task", operation, "malformed id",
				fmt.Errorf("%w: %w", store.ErrInvalidID, err))
		}
	}

	return store.NewStoreError("task", operation, "database error", err)
}

// CheckRowsAffected returns store.ErrTaskNotFound when an UPDATE or DELETE
// touched no rows.
func CheckRowsAffected(result sql.Result) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// parseUUID converts an identifier, reporting malformed input as
// store.ErrInvalidID without a round trip to the server.
func parseUUID(operation, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, store.NewStoreError("task", operation, "malformed id",
			fmt.Errorf("%w: %w", store.ErrInvalidID, err))
	}
	return parsed, nil
}
