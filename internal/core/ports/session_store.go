package ports

import (
	"context"

	"github.com/authgate/session-service/internal/core/domain"
)

// SessionStore persists active sessions keyed by their opaque token.
type SessionStore interface {
	// Save stores a session until its ExpiresAt instant.
	Save(ctx context.Context, session *domain.Session) error
	// Find returns the session for a token, or domain.ErrSessionNotFound
	// when the token is unknown or already expired out of the store.
	Find(ctx context.Context, token string) (*domain.Session, error)
	// Delete revokes a token. Returns domain.ErrSessionNotFound when no
	// session was stored under it.
	Delete(ctx context.Context, token string) error
}
