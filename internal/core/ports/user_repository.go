package ports

import (
	"context"

	"github.com/authgate/session-service/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUserExists when the
	// username is already taken; the store's uniqueness constraint is the
	// arbiter under concurrent registration.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
