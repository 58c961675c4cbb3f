package controllers

import (
	"log/slog"
	"net/http"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/domain"
)

// writeServiceError maps a service error to a response by its domain.Kind.
// Unclassified errors are logged and reported as an opaque 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch kind := domain.KindOf(err); kind {
	case domain.KindNotFound:
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
	case domain.KindInvalid, domain.KindConflict, domain.KindCommit:
		logger.WarnContext(r.Context(), "request rejected", "path", r.URL.Path, "method", r.Method, "kind", kind.String(), "err", err)
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, domain.MessageOf(err))
	case domain.KindInternal:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteInternalError(w)
	default:
		logger.ErrorContext(r.Context(), "unhandled error kind", "path", r.URL.Path, "method", r.Method, "kind", int(kind), "err", err)
		helpers.WriteInternalError(w)
	}
}
