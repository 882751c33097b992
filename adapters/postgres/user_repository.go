package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	apperrors "focusflow/internal/errors"
	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// UserRepositoryImpl implements UserRepository for PostgreSQL
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// GetUserByID retrieves a user by their ID
func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, image, created_at
		FROM users
		WHERE id = $1
	`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("user")
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateUser creates a new user profile row
func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (id, name, email, image, created_at)
		VALUES (:id, :name, :email, :image, :created_at)
	`, user)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
		return apperrors.Conflict("a user with that email already exists")
	}
	return err
}

// AuthRepositoryImpl implements AuthRepository for PostgreSQL
type AuthRepositoryImpl struct {
	db *sqlx.DB
}

// NewAuthRepository creates a new PostgreSQL auth repository
func NewAuthRepository(db *sqlx.DB) ports.AuthRepository {
	return &AuthRepositoryImpl{db: db}
}

// ResolveToken returns the auth session for a token, or NOT_FOUND. Expired
// sessions resolve the same as missing ones.
func (r *AuthRepositoryImpl) ResolveToken(ctx context.Context, token uuid.UUID) (*models.AuthSession, error) {
	var session models.AuthSession
	err := r.db.GetContext(ctx, &session, `
		SELECT token, user_id, expires_at
		FROM auth_sessions
		WHERE token = $1
	`, token)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("auth session")
	}
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, apperrors.NotFound("auth session")
	}

	return &session, nil
}

// CreateSession issues a new token for a user.
func (r *AuthRepositoryImpl) CreateSession(ctx context.Context, userID uuid.UUID, ttl time.Duration) (*models.AuthSession, error) {
	session := &models.AuthSession{
		Token:     uuid.New(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO auth_sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, session.Token, session.UserID, session.ExpiresAt)

	if err != nil {
		return nil, err
	}

	return session, nil
}
