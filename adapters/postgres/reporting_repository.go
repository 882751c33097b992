package postgres

import (
	"context"
	"time"

	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ReportingRepositoryImpl implements ReportingRepository for PostgreSQL.
// Pure read-side aggregates; every call recomputes from stored rows.
type ReportingRepositoryImpl struct {
	db *sqlx.DB
}

// NewReportingRepository creates a new PostgreSQL reporting repository
func NewReportingRepository(db *sqlx.DB) ports.ReportingRepository {
	return &ReportingRepositoryImpl{db: db}
}

// FocusTimeBetween sums the caller's completed focus minutes for sessions
// started in [from, to)
func (r *ReportingRepositoryImpl) FocusTimeBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM(actual_duration), 0)
		FROM focus_sessions
		WHERE user_id = $1 AND is_completed = true
		  AND started_at >= $2 AND started_at < $3
	`, userID, from, to)
	return total, err
}

// Leaderboard aggregates completed focus time per user since the period start.
// Left-joined so users with no sessions in the period still appear with zero
// totals.
func (r *ReportingRepositoryImpl) Leaderboard(ctx context.Context, since time.Time, limit int) ([]models.LeaderboardEntry, error) {
	entries := []models.LeaderboardEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT u.id AS user_id, u.name AS user_name, u.image AS user_image,
		       COALESCE(SUM(s.actual_duration), 0) AS total_time,
		       COUNT(s.id) AS session_count
		FROM users u
		LEFT JOIN focus_sessions s
		       ON s.user_id = u.id
		      AND s.is_completed = true
		      AND s.started_at >= $1
		GROUP BY u.id, u.name, u.image
		ORDER BY COALESCE(SUM(s.actual_duration), 0) DESC
		LIMIT $2
	`, since, limit)
	return entries, err
}

// PeriodTotal sums the caller's completed focus minutes since the period start
func (r *ReportingRepositoryImpl) PeriodTotal(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM(actual_duration), 0)
		FROM focus_sessions
		WHERE user_id = $1 AND is_completed = true AND started_at >= $2
	`, userID, since)
	return total, err
}

// CountUsersAbove counts distinct other users whose period total strictly
// exceeds the given total
func (r *ReportingRepositoryImpl) CountUsersAbove(ctx context.Context, excludeUser uuid.UUID, since time.Time, total int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM (
			SELECT user_id
			FROM focus_sessions
			WHERE is_completed = true AND started_at >= $2 AND user_id <> $1
			GROUP BY user_id
			HAVING SUM(actual_duration) > $3
		) better
	`, excludeUser, since, total)
	return count, err
}

// CountActiveUsers counts distinct users with at least one completed session
// since the period start
func (r *ReportingRepositoryImpl) CountActiveUsers(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(DISTINCT user_id)
		FROM focus_sessions
		WHERE is_completed = true AND started_at >= $1
	`, since)
	return count, err
}
