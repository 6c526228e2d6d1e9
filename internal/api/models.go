package api

import "github.com/phrazzld/task-api/internal/domain"

// CreateTaskRequest defines the payload for POST /tasks. An omitted
// completed flag is false.
type CreateTaskRequest struct {
	Title     Text `json:"title"     validate:"required"`
	Completed Flag `json:"completed"`
}

// UpdateTaskRequest defines the payload for PUT /tasks/{id}. Both fields
// are always written; omitted fields are written as their zero values.
type UpdateTaskRequest struct {
	Title     Text `json:"title"`
	Completed Flag `json:"completed"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
