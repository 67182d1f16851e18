// Package handler exposes the liveness endpoint.
package handler

import (
	"context"
	"net/http"

	"portfolio-site/server/internal/server/httpx"
)

// StorageChecker reports whether the backing document storage is usable.
type StorageChecker interface {
	Check(ctx context.Context) error
}

// HTTPHandler serves GET /api/health.
type HTTPHandler struct {
	storage StorageChecker
}

// NewHTTPHandler returns a health handler. storage may be nil to skip the
// storage probe.
func NewHTTPHandler(storage StorageChecker) *HTTPHandler {
	return &HTTPHandler{storage: storage}
}

// Health reports ok, or degraded with a 503 when document storage is
// unreadable.
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.storage != nil {
		if err := h.storage.Check(r.Context()); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
