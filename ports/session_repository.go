package ports

import (
	"context"
	"time"

	"focusflow/models"

	"github.com/google/uuid"
)

// SessionRepository defines the interface for focus session data operations.
// All mutations are scoped by (session id, user id); a target that does not
// resolve under the caller's id yields NOT_FOUND.
type SessionRepository interface {
	// CreateSession inserts a new active session and fills its id and start time.
	CreateSession(ctx context.Context, session *models.FocusSession) error

	// HasOpenSession reports whether the user has a session in active or paused.
	HasOpenSession(ctx context.Context, userID uuid.UUID) (bool, error)

	// ActiveSession returns the user's session currently in status active
	// (not paused), joined with its category, or nil when there is none.
	ActiveSession(ctx context.Context, userID uuid.UUID) (*models.FocusSession, error)

	// GetSession retrieves one of the caller's sessions by id.
	GetSession(ctx context.Context, userID uuid.UUID, sessionID int64) (*models.FocusSession, error)

	// UpdateStatus moves one of the caller's sessions to the given status,
	// re-checking the current status under a row lock: terminal sessions
	// yield CONFLICT, re-issuing the current status is a no-op success.
	UpdateStatus(ctx context.Context, userID uuid.UUID, sessionID int64, status models.SessionStatus) error

	// CompleteSession terminates a session and folds it into the caller's
	// aggregates in a single transaction: session row, stats row, and any
	// achievement unlocks from the catalog all commit or none do.
	CompleteSession(ctx context.Context, userID uuid.UUID, sessionID int64, actualDuration int, catalog []models.Achievement) (*models.CompletionResult, error)

	// ListRecentActive returns the newest currently active sessions across all
	// users, joined with owner profile and category, for the community feed.
	ListRecentActive(ctx context.Context, limit int) ([]models.ActiveFeedEntry, error)

	// CompletedSessionsSince returns the caller's completed sessions started at
	// or after the given instant, oldest first.
	CompletedSessionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.FocusSession, error)
}

// StatsRepository defines the interface for user aggregate rows.
type StatsRepository interface {
	// GetOrCreateStats returns the user's stats row, creating a zeroed one if
	// absent.
	GetOrCreateStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error)
}
