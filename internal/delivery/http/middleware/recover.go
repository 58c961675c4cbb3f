package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"codecamp/internal/delivery/http/helpers"
)

// Recover converts a panic in next into the opaque 500 response and logs the stack.
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
			requestID, _ := RequestIDFromContext(r.Context())
			logger.ErrorContext(r.Context(), "panic recovered",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", requestID,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			helpers.WriteInternalError(w)
		}()
		next.ServeHTTP(w, r)
	})
}
