package ports

import (
	"context"

	"github.com/authgate/session-service/internal/core/domain"
)

// AuthService implements registration, credential verification, and the
// session lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Authenticate verifies credentials without side effects. Unknown
	// usernames and wrong passwords are indistinguishable to the caller.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	// Login issues a fresh session for an already-authenticated user.
	Login(ctx context.Context, user *domain.User) (*domain.Session, error)
	// Logout revokes the session behind the token. Returns
	// domain.ErrSessionNotFound when the token holds no session.
	Logout(ctx context.Context, token string) error
}

// RequestGate resolves an incoming token to an identity before any
// protected handler runs.
type RequestGate interface {
	// Resolve returns the live session for a token, or
	// domain.ErrUnauthenticated when the token is missing, unknown, or
	// expired. Resolve never mutates the session.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}
