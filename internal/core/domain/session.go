package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrUnauthenticated = errors.New("unauthenticated")

// Session ties an opaque token to a user identity for a bounded lifetime.
// The username is denormalized so protected handlers can greet the user
// without a credential-store round trip.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session lifetime has elapsed at the given
// instant. The session store also expires keys natively; this is the
// authoritative check on resolve.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
