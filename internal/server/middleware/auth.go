package middleware

import (
	"net/http"

	"portfolio-site/server/internal/server/httpx"
	"portfolio-site/server/internal/session"
)

// RequireSession guards a handler behind a live session. Requests without a
// session cookie, or whose session is missing or expired, get 401 and the
// wrapped handler never runs. On success the session ID and email are stored
// in the request context.
func RequireSession(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				httpx.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			email, ok := store.GetEmail(r.Context(), cookie.Value)
			if !ok {
				httpx.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			ctx := WithSession(r.Context(), SessionInfo{ID: cookie.Value, Email: email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
