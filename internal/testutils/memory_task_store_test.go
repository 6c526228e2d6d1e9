package testutils

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/store"
)

func TestMemoryTaskStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTaskStore()

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	first := &domain.Task{Title: "first"}
	second := &domain.Task{Title: "second", Completed: true}
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)

	tasks, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)

	updated, err := s.Update(ctx, &domain.Task{ID: first.ID, Title: "renamed", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)

	got, err := s.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	require.NoError(t, s.Delete(ctx, first.ID))
	_, err = s.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.ErrorIs(t, s.Delete(ctx, first.ID), store.ErrTaskNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryTaskStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTaskStore()
	task := &domain.Task{Title: "original"}
	require.NoError(t, s.Create(ctx, task))

	got, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}

func TestMemoryTaskStoreInvariants(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTaskStore()

	err := s.Create(ctx, &domain.Task{})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Equal(t, 0, s.Len())

	task := &domain.Task{Title: "keep"}
	require.NoError(t, s.Create(ctx, task))
	_, err = s.Update(ctx, &domain.Task{ID: task.ID})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	_, err = s.Update(ctx, &domain.Task{ID: "00000000-0000-0000-0000-000000000000", Title: "x"})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestMemoryTaskStoreMalformedID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTaskStore()

	_, err := s.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)
	assert.False(t, store.IsNotFoundError(err))

	assert.ErrorIs(t, s.Delete(ctx, "not-an-id"), store.ErrInvalidID)
}

func TestMemoryTaskStorePing(t *testing.T) {
	s := NewMemoryTaskStore()
	assert.NoError(t, s.Ping(context.Background()))

	s.PingErr = errors.New("down")
	assert.EqualError(t, s.Ping(context.Background()), "down")
}

func TestTestSlogHandlerKeepsAttrs(t *testing.T) {
	log, h := NewTestLogger()
	log.With("component", "test").Warn("careful", "n", 1)
	log.Info("plain")

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "careful", entries[0]["message"])
	assert.Equal(t, "test", entries[0]["component"])
	assert.Len(t, h.EntriesAt(slog.LevelWarn), 1)

	h.Clear()
	assert.Empty(t, h.Entries())
}
