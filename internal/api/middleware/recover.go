package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

// Recoverer turns a panic in a downstream handler into a 500 JSON response
// and logs the panic value and stack. http.ErrAbortHandler is re-raised so
// net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
				panic(rvr)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				slog.String("panic", fmt.Sprint(rvr)),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))

			shared.RespondWithError(w, r, http.StatusInternalServerError, shared.MsgInternalError)
		}()

		next.ServeHTTP(w, r)
	})
}
