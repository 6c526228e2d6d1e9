package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger returns a copy of ctx carrying the given logger.
// It panics if logger is nil.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		// ALLOW-PANIC: storing a nil logger is a programming error
		panic("logger cannot be nil")
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault returns the logger stored in ctx, or fallback when
// ctx is nil or holds no logger.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return fallback
}

// WithRequestID attaches a request ID to the logger carried by ctx. A
// context without a logger is returned unchanged.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok && l != nil {
		ctx = context.WithValue(ctx, loggerKey, l.With(slog.String("request_id", requestID)))
	}
	return ctx
}
