package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-site/server/internal/session"
)

func authedHandler(t *testing.T, store session.Store) (http.Handler, *SessionInfo) {
	t.Helper()
	var seen SessionInfo
	h := RequireSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSession(r.Context())
		if !ok {
			t.Error("session should be in context inside guarded handler")
		}
		seen = sess
		w.WriteHeader(http.StatusOK)
	}))
	return h, &seen
}

func TestRequireSession_NoCookie(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	handler, _ := authedHandler(t, store)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/documents", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if body["error"] != "Authentication required" {
		t.Errorf("error = %q, want %q", body["error"], "Authentication required")
	}
}

func TestRequireSession_UnknownSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	handler, _ := authedHandler(t, store)

	r := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "stale-id"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireSession_LiveSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	id := store.Create(context.Background(), "visitor@example.com")
	handler, seen := authedHandler(t, store)

	r := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if seen.ID != id {
		t.Errorf("session ID in context = %q, want %q", seen.ID, id)
	}
	if seen.Email != "visitor@example.com" {
		t.Errorf("session email = %q, want visitor@example.com", seen.Email)
	}
}

func TestRequireSession_DestroyedSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	id := store.Create(context.Background(), "visitor@example.com")
	store.Destroy(context.Background(), id)
	handler, _ := authedHandler(t, store)

	r := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 with stale cookie", w.Code)
	}
}
