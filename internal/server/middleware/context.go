// Package middleware holds the HTTP middleware chain: request context,
// access logging, telemetry, CORS, panic recovery, and the session guard.
package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

type contextKey struct{ name string }

var (
	clientInfoKey = contextKey{"client_info"}
	sessionKey    = contextKey{"session"}
)

// ClientInfo is per-request caller data extracted once and reused by logging,
// telemetry, and handlers.
type ClientInfo struct {
	IP        string
	UserAgent string
	Referrer  string
}

// SessionInfo identifies the authenticated session set by RequireSession.
type SessionInfo struct {
	ID    string
	Email string
}

// WithClientInfo returns a context carrying info.
func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey, info)
}

// GetClientInfo returns the client info from context. The zero value is
// returned when the request-context middleware did not run.
func GetClientInfo(ctx context.Context) ClientInfo {
	info, _ := ctx.Value(clientInfoKey).(ClientInfo)
	return info
}

// WithSession returns a context carrying the authenticated session.
func WithSession(ctx context.Context, info SessionInfo) context.Context {
	return context.WithValue(ctx, sessionKey, info)
}

// GetSession returns the authenticated session from context and true if set.
func GetSession(ctx context.Context) (SessionInfo, bool) {
	info, ok := ctx.Value(sessionKey).(SessionInfo)
	return info, ok
}

// ClientIP returns the client IP from proxy headers (X-Forwarded-For,
// X-Real-IP) or the remote address, or "unknown".
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if s := strings.TrimSpace(fwd); s != "" {
			if i := strings.Index(s, ","); i > 0 {
				s = strings.TrimSpace(s[:i])
			}
			return s
		}
	}
	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		return real
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// RequestContext extracts client info once per request and stores it in the
// request context for the rest of the chain.
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent := r.Header.Get("User-Agent")
			if userAgent == "" {
				userAgent = "unknown"
			}
			info := ClientInfo{
				IP:        ClientIP(r),
				UserAgent: userAgent,
				Referrer:  r.Header.Get("Referer"),
			}
			next.ServeHTTP(w, r.WithContext(WithClientInfo(r.Context(), info)))
		})
	}
}
