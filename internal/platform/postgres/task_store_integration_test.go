package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/phrazzld/task-api/internal/testutils"
)

// withTx migrates the database named by TASKS_TEST_DATABASE_URL and runs fn
// inside a transaction that is rolled back afterwards.
func withTx(t *testing.T, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()
	url := testutils.IntegrationURL(t, testutils.PostgresURLEnv)

	db, err := Open(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, Migrate(ctx, db, nil))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	fn(t, tx)
}

func TestPostgresTaskStoreIntegration(t *testing.T) {
	withTx(t, func(t *testing.T, tx *sql.Tx) {
		s := NewPostgresTaskStore(tx, nil)
		ctx := context.Background()

		_, err := tx.ExecContext(ctx, `DELETE FROM tasks`)
		require.NoError(t, err)

		tasks, err := s.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)

		first := &domain.Task{Title: "Buy milk"}
		require.NoError(t, s.Create(ctx, first))
		require.NotEmpty(t, first.ID)

		got, err := s.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first, got)

		updated, err := s.Update(ctx, &domain.Task{ID: first.ID, Title: "Buy oat milk", Completed: true})
		require.NoError(t, err)
		assert.Equal(t, &domain.Task{ID: first.ID, Title: "Buy oat milk", Completed: true}, updated)

		require.NoError(t, s.Delete(ctx, first.ID))
		_, err = s.GetByID(ctx, first.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.ErrorIs(t, s.Delete(ctx, first.ID), store.ErrTaskNotFound)

		_, err = s.Update(ctx, &domain.Task{ID: first.ID, Title: "gone"})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		assert.NoError(t, s.Ping(ctx))
	})
}

func TestPostgresTitleCheckConstraint(t *testing.T) {
	withTx(t, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.ExecContext(context.Background(), `INSERT INTO tasks (title) VALUES ('')`)
		require.Error(t, err)
		assert.ErrorIs(t, MapError("create", err), store.ErrInvalidEntity)
	})
}
