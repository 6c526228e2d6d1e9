package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TaskIDParam is the route parameter holding a task identifier.
const TaskIDParam = "id"

// taskIDFromPath returns the raw task identifier from the URL path. It is
// passed to the store unparsed; each backend decides what a valid id is.
func taskIDFromPath(r *http.Request) string {
	return chi.URLParam(r, TaskIDParam)
}
