// Package main implements the entry point for the task API server, a small
// JSON service that creates, lists, updates and deletes to-do tasks.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/task-api/internal/config"
)

// main is the entry point for the task-api server.
// It loads configuration, sets up logging, connects the task store and
// serves HTTP until SIGINT or SIGTERM.
func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	logAppConfig(cfg, logger)

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// logAppConfig logs the non-sensitive parts of the configuration.
func logAppConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"error_detail", cfg.Server.ErrorDetail,
		"database_driver", cfg.Database.Driver,
		"metrics_enabled", cfg.Metrics.Enabled)
	logger.Debug("Database configuration", "url_present", cfg.Database.URL != "")
}
