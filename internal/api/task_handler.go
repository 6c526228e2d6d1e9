package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskHandler handles task-related HTTP requests. Each request performs at
// most one store operation.
type TaskHandler struct {
	taskStore   store.TaskStore
	logger      *slog.Logger
	errorDetail string
}

// NewTaskHandler creates a new TaskHandler. errorDetail selects how much of
// a server error's text reaches the client (see GetErrorMessage).
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger, errorDetail string) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskStore:   taskStore,
		logger:      logger.With("component", "task_handler"),
		errorDetail: errorDetail,
	}
}

func (h *TaskHandler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}

// handleError writes the response for an error returned by the store or
// raised while building a task from the request.
func (h *TaskHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetErrorMessage(err, h.errorDetail), err)
}

// handleDecodeError answers a request body that could not be decoded. A
// field of the wrong type is handled like any other failure to build a
// task; a body that is not JSON at all gets the generic 500.
func (h *TaskHandler) handleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var castErr *CastError
	if errors.As(err, &castErr) {
		h.handleError(w, r, err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgInternalError, err)
}

// ListTasks handles GET /tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Debug("listed tasks", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskStore.GetByID(r.Context(), taskIDFromPath(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, r, err)
		return
	}

	// Title is the only validated field.
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgTitleRequired, err)
		return
	}

	task, err := domain.NewTask(string(req.Title), bool(req.Completed))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgTitleRequired, err)
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("task created", slog.String("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests. There is no required-field
// check here; the store rejects a blank title.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.handleDecodeError(w, r, err)
		return
	}

	task := &domain.Task{
		ID:        taskIDFromPath(r),
		Title:     string(req.Title),
		Completed: bool(req.Completed),
	}

	updated, err := h.taskStore.Update(r.Context(), task)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("task updated", slog.String("task_id", updated.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(updated))
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := taskIDFromPath(r)
	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("task deleted", slog.String("task_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health requests by pinging the store.
func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.taskStore.Ping(r.Context()); err != nil {
		h.log(r).Warn("health check failed", slog.String("error", redact.Error(err)))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: HealthStatusFailing})
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: HealthStatusOK})
}

// NotFound answers every request no route matched, including a known path
// with an unsupported method.
func (h *TaskHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgNotFound)
}
