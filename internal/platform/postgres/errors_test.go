package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/task-api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantIs    []error
		wantNotIs []error
	}{
		{
			name:   "no rows",
			err:    sql.ErrNoRows,
			wantIs: []error{store.ErrTaskNotFound, store.ErrNotFound},
		},
		{
			name:      "check violation",
			err:       &pgconn.PgError{Code: checkViolationCode, ConstraintName: "tasks_title_check"},
			wantIs:    []error{store.ErrInvalidEntity},
			wantNotIs: []error{store.ErrNotFound},
		},
		{
			name:   "not null violation",
			err:    &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			wantIs: []error{store.ErrInvalidEntity},
		},
		{
			name:   "invalid text representation",
			err:    fmt.Errorf("query: %w", &pgconn.PgError{Code: invalidTextRepresentationCode}),
			wantIs: []error{store.ErrInvalidID},
		},
		{
			name:      "other",
			err:       errors.New("connection refused"),
			wantNotIs: []error{store.ErrNotFound, store.ErrInvalidEntity, store.ErrInvalidID},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError("update", tc.err)
			require.Error(t, mapped)
			for _, target := range tc.wantIs {
				assert.ErrorIs(t, mapped, target)
			}
			for _, target := range tc.wantNotIs {
				assert.NotErrorIs(t, mapped, target)
			}
		})
	}

	assert.NoError(t, MapError("get", nil))
}

func TestMapErrorKeepsConstraintName(t *testing.T) {
	err := MapError("create", &pgconn.PgError{Code: checkViolationCode, ConstraintName: "tasks_title_check"})

	assert.Contains(t, err.Error(), "tasks_title_check")
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}))
	assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}), store.ErrTaskNotFound)
	assert.Error(t, CheckRowsAffected(fakeResult{err: errors.New("unsupported")}))
	assert.Error(t, CheckRowsAffected(nil))
}

func TestParseUUID(t *testing.T) {
	id, err := parseUUID("get", "6f1c0a52-56d2-4b0c-9a53-0cbe8f1f1f4e")
	require.NoError(t, err)
	assert.Equal(t, "6f1c0a52-56d2-4b0c-9a53-0cbe8f1f1f4e", id.String())

	_, err = parseUUID("get", "65f0c0ffee0000000000abcd")
	assert.ErrorIs(t, err, store.ErrInvalidID)
}
