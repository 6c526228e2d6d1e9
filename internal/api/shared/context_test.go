package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "trace ID should be a UUID")

	assert.Empty(t, GetTraceID(ctx), "Expected original context to remain unchanged")
}

func TestWithTraceID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "fixed-id")
	assert.Equal(t, "fixed-id", GetTraceID(ctx))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123) // Not a string

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID when context has invalid type")
}

func TestSetTraceIDUnique(t *testing.T) {
	const iterations = 1000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id := GetTraceID(SetTraceID(context.Background()))
		assert.False(t, seen[id], "Expected all trace IDs to be unique")
		seen[id] = true
	}
	assert.Len(t, seen, iterations)
}
