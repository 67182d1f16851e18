// Package service implements email/access-code verification.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"portfolio-site/server/internal/accesscode"
	"portfolio-site/server/internal/accesslog"
	accesslogdomain "portfolio-site/server/internal/accesslog/domain"
	"portfolio-site/server/internal/session"
	"portfolio-site/server/internal/telemetry"
	telemetrydomain "portfolio-site/server/internal/telemetry/domain"
)

// Sentinel errors for the verify service; the handler maps them to HTTP statuses.
var (
	ErrMissingFields = errors.New("email and code are required")
	ErrInvalidCode   = errors.New("invalid verification code")
)

// Attempt is one verification attempt with its request context.
type Attempt struct {
	Email     string
	Code      string
	IP        string
	UserAgent string
}

// VerifyService checks submitted (email, code) pairs against the derived
// access code and owns the resulting session mutations. Every attempt is
// recorded, whatever the outcome.
type VerifyService struct {
	sessions  session.Store
	accessLog *accesslog.Logger
	verifyLog *accesslog.Logger
	emitter   telemetry.EventEmitter
}

// NewVerifyService returns a VerifyService. verifyLog is the dedicated
// verification log next to the main access log; either logger may be nil.
func NewVerifyService(sessions session.Store, accessLog, verifyLog *accesslog.Logger, emitter telemetry.EventEmitter) *VerifyService {
	return &VerifyService{
		sessions:  sessions,
		accessLog: accessLog,
		verifyLog: verifyLog,
		emitter:   emitter,
	}
}

// Verify validates the attempt. On success it creates a session for the
// normalized email and returns its ID. Returns ErrMissingFields when email or
// code is absent and ErrInvalidCode on mismatch; the mismatch message never
// distinguishes a wrong code from an unknown email.
func (s *VerifyService) Verify(ctx context.Context, a Attempt) (string, error) {
	if a.Email == "" || a.Code == "" {
		s.logAttempt(ctx, a, orMissing(a.Email), orMissing(a.Code), "", false)
		return "", ErrMissingFields
	}

	expected := accesscode.Compute(a.Email)
	valid := a.Code == expected // exact match; the submitted code is not normalized

	s.logAttempt(ctx, a, a.Email, a.Code, expected, valid)

	if !valid {
		return "", ErrInvalidCode
	}

	email := strings.ToLower(strings.TrimSpace(a.Email))
	return s.sessions.Create(ctx, email), nil
}

// SignOut destroys the session. Destroying an absent or already-destroyed
// session is a no-op.
func (s *VerifyService) SignOut(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	s.sessions.Destroy(ctx, sessionID)
}

// logAttempt records the attempt in the main access log, the dedicated
// verification log, and the telemetry channel. Best-effort on every path.
func (s *VerifyService) logAttempt(ctx context.Context, a Attempt, email, code, expected string, valid bool) {
	extra := map[string]any{
		"event":   "email_verification",
		"email":   email,
		"code":    code,
		"isValid": valid,
	}
	if expected != "" {
		extra["expectedCode"] = expected
	}
	entry := &accesslogdomain.Entry{
		IP:        a.IP,
		Method:    "POST",
		URL:       "/api/verify",
		UserAgent: a.UserAgent,
		Extra:     extra,
	}
	s.accessLog.Log(ctx, entry)
	s.verifyLog.Log(ctx, &accesslogdomain.Entry{
		IP:        entry.IP,
		Method:    entry.Method,
		URL:       entry.URL,
		UserAgent: entry.UserAgent,
		Extra:     extra,
	})

	meta, _ := json.Marshal(map[string]any{"valid": valid, "ip": a.IP})
	telemetry.EmitAsync(s.emitter, ctx, &telemetrydomain.Event{
		Email:     email,
		EventType: "email_verification",
		Source:    "verify_service",
		Metadata:  meta,
		CreatedAt: time.Now().UTC(),
	})
}

func orMissing(v string) string {
	if v == "" {
		return "missing"
	}
	return v
}
