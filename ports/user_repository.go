package ports

import (
	"context"
	"time"

	"focusflow/models"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user profile data operations
type UserRepository interface {
	// GetUserByID retrieves a user by their ID
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// CreateUser creates a new user profile row
	CreateUser(ctx context.Context, user *models.User) error
}

// AuthRepository resolves identity-provider bearer tokens to users.
type AuthRepository interface {
	// ResolveToken returns the auth session for a token, or NOT_FOUND.
	ResolveToken(ctx context.Context, token uuid.UUID) (*models.AuthSession, error)

	// CreateSession issues a new token for a user.
	CreateSession(ctx context.Context, userID uuid.UUID, ttl time.Duration) (*models.AuthSession, error)
}
