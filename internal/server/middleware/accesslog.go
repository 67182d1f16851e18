package middleware

import (
	"net/http"

	"portfolio-site/server/internal/accesslog"
	"portfolio-site/server/internal/accesslog/domain"
)

// AccessLog records one entry per request in the access log. skipPaths is the
// set of paths to not log (e.g. the health endpoint). The write is
// fire-and-forget; it never delays or fails the response.
func AccessLog(logger *accesslog.Logger, skipPaths map[string]bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logger != nil && !skipPaths[r.URL.Path] {
				info := GetClientInfo(r.Context())
				entry := &domain.Entry{
					IP:        info.IP,
					Method:    r.Method,
					URL:       r.URL.RequestURI(),
					UserAgent: info.UserAgent,
				}
				if info.Referrer != "" {
					entry.Extra = map[string]any{"referrer": info.Referrer}
				}
				logger.Log(r.Context(), entry)
			}
			next.ServeHTTP(w, r)
		})
	}
}
