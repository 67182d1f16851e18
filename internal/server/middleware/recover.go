package middleware

import (
	"fmt"
	"log"
	"net/http"

	"portfolio-site/server/internal/server/httpx"
)

// Recover maps panics in the handler chain to a generic 500. When
// includeDetail is true (development), the panic value is included in the
// response body; in production the message never leaks detail.
func Recover(includeDetail bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("server: panic handling %s %s: %v", r.Method, r.URL.Path, rec)
					msg := "Internal server error"
					if includeDetail {
						msg = fmt.Sprintf("Internal server error: %v", rec)
					}
					httpx.Error(w, http.StatusInternalServerError, msg)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
