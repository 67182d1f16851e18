// Package handler exposes the verification endpoints over HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portfolio-site/server/internal/server/httpx"
	"portfolio-site/server/internal/server/middleware"
	"portfolio-site/server/internal/session"
	"portfolio-site/server/internal/verification/service"
)

// verifyRequest is the body of POST /api/verify.
type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// verifyResponse is the body of every verification endpoint response.
type verifyResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

// HTTPHandler serves /api/verify and /api/signout.
type HTTPHandler struct {
	service      *service.VerifyService
	sessionTTL   time.Duration
	secureCookie bool
}

// NewHTTPHandler returns a verification handler. secureCookie marks issued
// cookies Secure and should be set in production.
func NewHTTPHandler(svc *service.VerifyService, sessionTTL time.Duration, secureCookie bool) *HTTPHandler {
	if sessionTTL <= 0 {
		sessionTTL = session.DefaultTTL
	}
	return &HTTPHandler{service: svc, sessionTTL: sessionTTL, secureCookie: secureCookie}
}

// Verify handles POST /api/verify. A matching (email, code) pair issues the
// session cookie; a mismatch gets the same 401 whether the email is known or
// the code is merely wrong.
func (h *HTTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, verifyResponse{
			Success: false,
			Message: "Email and code are required",
		})
		return
	}

	info := middleware.GetClientInfo(r.Context())
	id, err := h.service.Verify(r.Context(), service.Attempt{
		Email:     req.Email,
		Code:      req.Code,
		IP:        info.IP,
		UserAgent: info.UserAgent,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteJSON(w, http.StatusBadRequest, verifyResponse{
			Success: false,
			Message: "Email and code are required",
		})
	case errors.Is(err, service.ErrInvalidCode):
		httpx.WriteJSON(w, http.StatusUnauthorized, verifyResponse{
			Success:   false,
			Message:   "Invalid verification code",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	case err != nil:
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
	default:
		http.SetCookie(w, h.sessionCookie(id, h.sessionTTL))
		httpx.WriteJSON(w, http.StatusOK, verifyResponse{
			Success:   true,
			Message:   "Verification successful",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// SignOut handles POST /api/signout. It destroys the session behind the
// cookie, if any, and clears the cookie either way.
func (h *HTTPHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(session.CookieName); err == nil {
		h.service.SignOut(r.Context(), c.Value)
	}
	http.SetCookie(w, h.sessionCookie("", -time.Second))
	httpx.WriteJSON(w, http.StatusOK, verifyResponse{
		Success: true,
		Message: "Signed out successfully",
	})
}

// sessionCookie builds the session cookie. A non-positive ttl produces an
// expired cookie that clears the browser's copy.
func (h *HTTPHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	maxAge := int(ttl.Seconds())
	if ttl <= 0 {
		maxAge = -1
	}
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}
