package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a system user. Sign-in itself (OAuth, cookies) is handled by
// the external identity provider; we only store the profile fields the product
// surfaces.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Image     *string   `json:"image,omitempty" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AuthSession is a resolved bearer token issued by the identity provider.
type AuthSession struct {
	Token     uuid.UUID `json:"-" db:"token"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
}

// Expired reports whether the auth session is past its expiry at the given instant.
func (s AuthSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
