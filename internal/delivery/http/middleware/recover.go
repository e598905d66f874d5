package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	h "gothamai/internal/delivery/http/helpers"
)

// Recover turns a panic in next into a 500 envelope and logs the stack.
func Recover(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered",
				"path", r.URL.Path,
				"method", r.Method,
				"panic", rec,
				"request_id", RequestIDFromContext(r.Context()),
				"stack", string(debug.Stack()),
			)
			h.WriteJSONError(w, http.StatusInternalServerError, h.InternalErrorMessage)
		}()
		next.ServeHTTP(w, r)
	})
}
