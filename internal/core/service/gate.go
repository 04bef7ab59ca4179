package service

import (
	"context"
	"errors"
	"time"

	"github.com/authgate/session-service/internal/core/domain"
	"github.com/authgate/session-service/internal/core/ports"
)

// Gate resolves incoming tokens to identities. It is the single check in
// front of every protected route.
type Gate struct {
	sessions ports.SessionStore
}

func NewGate(sessions ports.SessionStore) *Gate {
	return &Gate{sessions: sessions}
}

// Resolve returns the live session for token. The store already expires
// keys on its own; the ExpiresAt check covers clock skew between the store
// TTL and the recorded deadline. Resolve never mutates the session.
func (g *Gate) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := g.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if session.Expired(time.Now().UTC()) {
		return nil, domain.ErrUnauthenticated
	}

	return session, nil
}
