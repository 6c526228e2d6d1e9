package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/mongodb"
	"github.com/phrazzld/task-api/internal/platform/postgres"
	"github.com/phrazzld/task-api/internal/redact"
	"github.com/phrazzld/task-api/internal/store"
)

// closeFunc releases the resources behind a task store.
type closeFunc func(ctx context.Context) error

// taskStoreSetup is the task store chosen at startup and what it holds on to.
type taskStoreSetup struct {
	taskStore store.TaskStore
	// nil when nothing needs closing
	close closeFunc
	// the pool behind a PostgreSQL store, nil for other backends
	sqlDB *sql.DB
}

// setupTaskStore builds the task store for the configured driver.
// Database failures never stop the server: an unreachable database is
// logged and requests fail until it comes back, and a connection string
// that cannot be used at all is logged and replaced by a store that fails
// every operation. Only an unknown driver is returned as an error.
func setupTaskStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*taskStoreSetup, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	switch cfg.Driver {
	case config.DriverMongoDB, "":
		return setupMongoTaskStore(ctx, cfg, timeout, logger), nil
	case config.DriverPostgres:
		return setupPostgresTaskStore(ctx, cfg, timeout, logger), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func unavailableTaskStore(err error) *taskStoreSetup {
	return &taskStoreSetup{taskStore: store.NewUnavailableTaskStore(err)}
}

func setupMongoTaskStore(
	ctx context.Context,
	cfg config.DatabaseConfig,
	timeout time.Duration,
	logger *slog.Logger,
) *taskStoreSetup {
	db, err := mongodb.Connect(ctx, cfg.URL, cfg.Name, timeout)
	if err != nil {
		logger.Error("MongoDB connection error", "error", redact.Error(err))
		return unavailableTaskStore(err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := mongodb.Ping(pingCtx, db); err != nil {
		logger.Error("MongoDB connection error", "error", redact.Error(err))
	} else {
		logger.Info("Connected to MongoDB", "database", db.Name())
	}

	taskStore := mongodb.NewTaskStore(db, logger)
	return &taskStoreSetup{taskStore: taskStore, close: taskStore.Close}
}

// setupPostgresTaskStore opens the pool and wraps the store so that
// migrations are applied on first use. The startup ping triggers the first
// attempt; if the database is down it is retried by later requests.
func setupPostgresTaskStore(
	ctx context.Context,
	cfg config.DatabaseConfig,
	timeout time.Duration,
	logger *slog.Logger,
) *taskStoreSetup {
	db, err := postgres.Open(cfg.URL)
	if err != nil {
		logger.Error("PostgreSQL connection error", "error", redact.Error(err))
		return unavailableTaskStore(err)
	}

	taskStore := postgres.NewMigratingTaskStore(db, logger)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := taskStore.Ping(pingCtx); err != nil {
		logger.Error("PostgreSQL connection error", "error", redact.Error(err))
	} else {
		logger.Info("Connected to PostgreSQL")
	}

	return &taskStoreSetup{
		taskStore: taskStore,
		close:     func(context.Context) error { return db.Close() },
		sqlDB:     db,
	}
}
