// Package testutils provides helpers shared by tests across the application:
// an in-memory task store, a log-capturing slog handler and environment
// helpers that gate integration tests on a reachable database.
package testutils
