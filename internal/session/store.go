// Package session provides the in-memory session store behind the session
// cookie. Sessions are process-local: a restart signs everyone out.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-site/server/internal/session/domain"
)

// CookieName is the name of the session cookie issued on successful verification.
const CookieName = "portfolio_session"

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

// Store maps opaque session IDs to authenticated visitors.
type Store interface {
	// Create stores a new authenticated session for email and returns its ID.
	Create(ctx context.Context, email string) string
	// IsAuthenticated reports whether id refers to a live session.
	IsAuthenticated(ctx context.Context, id string) bool
	// GetEmail returns the email behind a live session. Returns ok false if
	// the session is missing or expired.
	GetEmail(ctx context.Context, id string) (email string, ok bool)
	// Destroy removes the session. Destroying an absent session is a no-op.
	Destroy(ctx context.Context, id string)
}

// MemoryStore is an in-memory Store implementation. An expiry check on every
// read deletes and treats as absent any session past its deadline.
type MemoryStore struct {
	mu   sync.RWMutex
	m    map[string]*domain.Session
	ttl  time.Duration
	nowF func() time.Time
}

// NewMemoryStore returns an in-memory store with the given session TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		m:    make(map[string]*domain.Session),
		ttl:  ttl,
		nowF: func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new session for email and returns its opaque ID.
func (s *MemoryStore) Create(ctx context.Context, email string) string {
	now := s.nowF()
	sess := &domain.Session{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sess.ID] = sess
	return sess.ID
}

// IsAuthenticated reports whether id refers to a live session.
func (s *MemoryStore) IsAuthenticated(ctx context.Context, id string) bool {
	_, ok := s.get(id)
	return ok
}

// GetEmail returns the email behind a live session.
func (s *MemoryStore) GetEmail(ctx context.Context, id string) (string, bool) {
	sess, ok := s.get(id)
	if !ok {
		return "", false
	}
	return sess.Email, true
}

// Destroy removes the session. Idempotent.
func (s *MemoryStore) Destroy(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
}

func (s *MemoryStore) get(id string) (*domain.Session, bool) {
	s.mu.RLock()
	sess, ok := s.m[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !sess.ExpiresAt.After(s.nowF()) {
		s.mu.Lock()
		delete(s.m, id)
		s.mu.Unlock()
		return nil, false
	}
	return sess, true
}
