package api

import (
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/redact"
	"github.com/phrazzld/task-api/internal/store"
)

// Messages returned to clients.
const (
	MsgTaskNotFound     = "Task not found"
	MsgTitleRequired    = "Title is required"
	MsgNotFound         = "Not found"
	MsgInternalError    = shared.MsgInternalError
	HealthStatusOK      = "ok"
	HealthStatusFailing = "unavailable"
)

// MapErrorToStatusCode maps store errors to HTTP status codes. Only
// not-found conditions are client errors; everything else reaching a
// handler from the store, including malformed identifiers and constraint
// violations, is a server error.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage returns the message sent to the client for err.
// detail is one of the config.ErrorDetail* modes and only affects server
// errors: raw forwards the error text, redacted scrubs it first and opaque
// replaces it with a generic message.
func GetErrorMessage(err error, detail string) string {
	if err == nil {
		return MsgInternalError
	}
	if store.IsNotFoundError(err) {
		return MsgTaskNotFound
	}

	switch detail {
	case config.ErrorDetailRaw:
		return err.Error()
	case config.ErrorDetailOpaque:
		return MsgInternalError
	default:
		return redact.Error(err)
	}
}
