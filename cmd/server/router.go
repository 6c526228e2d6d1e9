package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/task-api/internal/api"
	apiMiddleware "github.com/phrazzld/task-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	if app.metrics != nil {
		// Outside the recoverer so that recovered panics are counted as 500s.
		r.Use(apiMiddleware.Metrics(app.metrics))
	}
	r.Use(apiMiddleware.Recoverer)

	taskHandler := api.NewTaskHandler(app.taskStore, app.logger, app.config.Server.ErrorDetail)

	taskPath := "/tasks/{" + api.TaskIDParam + "}"
	r.Get("/tasks", taskHandler.ListTasks)
	r.Post("/tasks", taskHandler.CreateTask)
	r.Get(taskPath, taskHandler.GetTask)
	r.Put(taskPath, taskHandler.UpdateTask)
	r.Delete(taskPath, taskHandler.DeleteTask)

	r.Get("/health", taskHandler.Health)

	if app.metrics != nil && app.config.Metrics.Path != "" {
		r.Method(http.MethodGet, app.config.Metrics.Path, app.metrics.Handler())
	}

	r.NotFound(taskHandler.NotFound)
	r.MethodNotAllowed(taskHandler.NotFound)

	return r
}
