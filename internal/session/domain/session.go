package domain

import "time"

// Session is the server-side record behind one session cookie. The client
// only ever holds the opaque ID.
type Session struct {
	ID        string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}
