package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"portfolio-site/server/internal/telemetry"
	"portfolio-site/server/internal/telemetry/domain"
)

// httpRequestMetadata is the JSON shape stored in Event.Metadata for http_request events.
type httpRequestMetadata struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	StatusCode int    `json:"status_code"`
	DurationMs int64  `json:"duration_ms"`
	ClientIP   string `json:"client_ip"`
}

// statusRecorder captures the response status code for telemetry.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Telemetry emits one http_request event per request. Best-effort: emit
// failures are logged and never affect the response. If emitter is nil the
// middleware no-ops. skipPaths is the set of paths to not emit (e.g. the
// health endpoint).
func Telemetry(emitter telemetry.EventEmitter, skipPaths map[string]bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if emitter == nil || skipPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			meta := httpRequestMetadata{
				Method:     r.Method,
				Path:       r.URL.Path,
				StatusCode: rec.status,
				DurationMs: time.Since(start).Milliseconds(),
				ClientIP:   GetClientInfo(r.Context()).IP,
			}
			metaJSON, _ := json.Marshal(meta)
			telemetry.EmitAsync(emitter, r.Context(), &domain.Event{
				EventType: "http_request",
				Source:    "http_middleware",
				Metadata:  metaJSON,
				CreatedAt: time.Now().UTC(),
			})
		})
	}
}
