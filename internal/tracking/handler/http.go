// Package handler records client-side tracking beacons.
package handler

import (
	"encoding/json"
	"net/http"

	"portfolio-site/server/internal/accesslog"
	"portfolio-site/server/internal/accesslog/domain"
	"portfolio-site/server/internal/server/httpx"
	"portfolio-site/server/internal/server/middleware"
)

// HTTPHandler serves POST /api/track. The frontend posts whatever client info
// it collected; the shape is not validated beyond being a JSON object.
type HTTPHandler struct {
	accessLog *accesslog.Logger
}

// NewHTTPHandler returns a tracking handler writing to accessLog.
func NewHTTPHandler(accessLog *accesslog.Logger) *HTTPHandler {
	return &HTTPHandler{accessLog: accessLog}
}

// Track handles POST /api/track.
func (h *HTTPHandler) Track(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid tracking payload")
		return
	}

	info := middleware.GetClientInfo(r.Context())
	if payload == nil {
		payload = map[string]any{}
	}
	payload["event"] = "client_tracking"
	payload["clientIp"] = info.IP

	h.accessLog.Log(r.Context(), &domain.Entry{
		IP:        info.IP,
		Method:    r.Method,
		URL:       r.URL.Path,
		UserAgent: info.UserAgent,
		Extra:     payload,
	})

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
