package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"focusflow/models"
)

// ReportingRepository defines the read-side aggregate queries. Every read
// recomputes from current stored state; there is no caching layer.
type ReportingRepository interface {
	// FocusTimeBetween sums the caller's completed focus minutes for sessions
	// started in [from, to).
	FocusTimeBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)

	// Leaderboard aggregates completed focus time per user since the period
	// start, left-joined so zero-session users still appear, ordered by total
	// time descending and truncated to limit.
	Leaderboard(ctx context.Context, since time.Time, limit int) ([]models.LeaderboardEntry, error)

	// PeriodTotal sums the caller's completed focus minutes since the period
	// start (0 if none).
	PeriodTotal(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)

	// CountUsersAbove counts distinct other users whose period total strictly
	// exceeds the given total.
	CountUsersAbove(ctx context.Context, excludeUser uuid.UUID, since time.Time, total int) (int, error)

	// CountActiveUsers counts distinct users with at least one completed
	// session since the period start.
	CountActiveUsers(ctx context.Context, since time.Time) (int, error)
}
