// Package handler exposes the document listing over HTTP.
package handler

import (
	"net/http"

	"portfolio-site/server/internal/documents/service"
	"portfolio-site/server/internal/server/httpx"
)

// HTTPHandler serves /api/documents. The route is wrapped by the session
// guard, so by the time List runs the caller is authenticated.
type HTTPHandler struct {
	lister *service.Lister
}

// NewHTTPHandler returns a documents handler over lister.
func NewHTTPHandler(lister *service.Lister) *HTTPHandler {
	return &HTTPHandler{lister: lister}
}

// List handles GET /api/documents and writes the full listing as a JSON array.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.lister.List(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, docs)
}
