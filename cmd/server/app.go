package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/metrics"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore  store.TaskStore
	closeStore closeFunc

	// nil when metrics are disabled
	metrics *metrics.Manager
}

// newApplication connects the configured task store and wires the
// application's dependencies.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	setup, err := setupTaskStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up task store: %w", err)
	}

	app := newApplicationWithStore(cfg, logger, setup.taskStore)
	app.closeStore = setup.close
	if app.metrics != nil && setup.sqlDB != nil {
		app.metrics.Registry().MustRegister(collectors.NewDBStatsCollector(setup.sqlDB, cfg.Database.Driver))
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// newApplicationWithStore wires an application around an existing store.
func newApplicationWithStore(cfg *config.Config, logger *slog.Logger, taskStore store.TaskStore) *application {
	app := &application{
		config:    cfg,
		logger:    logger,
		taskStore: taskStore,
	}

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New(metrics.WithNamespace(cfg.Metrics.Namespace))
		app.taskStore = metrics.InstrumentTaskStore(taskStore, app.metrics)
	}

	return app
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the task store connection.
func (app *application) cleanup() {
	if app.closeStore == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.closeStore(ctx); err != nil {
		app.logger.Error("Error closing database connection", "error", err)
	}
}
