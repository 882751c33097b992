package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "focusflow/internal/errors"
	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const sessionColumns = `id, user_id, category_id, title, planned_duration, actual_duration, started_at, completed_at, status, is_completed`

// SessionRepositoryImpl implements SessionRepository for PostgreSQL
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sqlx.DB) ports.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// CreateSession inserts a new active session and fills its id and start time
func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, session *models.FocusSession) error {
	session.Status = models.SessionStatusActive
	session.IsCompleted = false

	return r.db.QueryRowxContext(ctx, `
		INSERT INTO focus_sessions (user_id, category_id, title, planned_duration, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, started_at
	`, session.UserID, session.CategoryID, session.Title, session.PlannedDuration, session.Status).
		Scan(&session.ID, &session.StartedAt)
}

// HasOpenSession reports whether the user has a session in active or paused
func (r *SessionRepositoryImpl) HasOpenSession(ctx context.Context, userID uuid.UUID) (bool, error) {
	var open bool
	err := r.db.GetContext(ctx, &open, `
		SELECT EXISTS (
			SELECT 1 FROM focus_sessions
			WHERE user_id = $1 AND status IN ('active', 'paused')
		)
	`, userID)
	return open, err
}

// ActiveSession returns the user's session in status active joined with its
// category, or nil when there is none
func (r *SessionRepositoryImpl) ActiveSession(ctx context.Context, userID uuid.UUID) (*models.FocusSession, error) {
	var session models.FocusSession
	err := r.db.GetContext(ctx, &session, `
		SELECT `+sessionColumns+`
		FROM focus_sessions
		WHERE user_id = $1 AND status = 'active'
		ORDER BY started_at DESC
		LIMIT 1
	`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if session.CategoryID != nil {
		var category models.Category
		err = r.db.GetContext(ctx, &category, `
			SELECT id, name, color, icon, is_default, created_at
			FROM categories
			WHERE id = $1
		`, *session.CategoryID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if err == nil {
			session.Category = &category
		}
	}

	return &session, nil
}

// GetSession retrieves one of the caller's sessions by id
func (r *SessionRepositoryImpl) GetSession(ctx context.Context, userID uuid.UUID, sessionID int64) (*models.FocusSession, error) {
	var session models.FocusSession
	err := r.db.GetContext(ctx, &session, `
		SELECT `+sessionColumns+`
		FROM focus_sessions
		WHERE id = $1 AND user_id = $2
	`, sessionID, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("session")
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// UpdateStatus moves one of the caller's sessions to the given status. The
// current status is re-read under FOR UPDATE so a session that turned terminal
// after the caller's read cannot be resurrected; the lock serializes against
// CompleteSession's transaction.
func (r *SessionRepositoryImpl) UpdateStatus(ctx context.Context, userID uuid.UUID, sessionID int64, status models.SessionStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current models.SessionStatus
	err = tx.GetContext(ctx, &current, `
		SELECT status
		FROM focus_sessions
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, sessionID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound("session")
	}
	if err != nil {
		return err
	}
	if !current.CanTransition(status) {
		return apperrors.Conflict(fmt.Sprintf("cannot move a %s session to %s", current, status))
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE focus_sessions
		SET status = $3
		WHERE id = $1 AND user_id = $2
	`, sessionID, userID, status)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// CompleteSession terminates a session and folds it into the caller's
// aggregates. Session row, stats row and achievement unlocks commit in a
// single transaction so totals always reflect exactly the sessions marked
// completed.
func (r *SessionRepositoryImpl) CompleteSession(ctx context.Context, userID uuid.UUID, sessionID int64, actualDuration int, catalog []models.Achievement) (*models.CompletionResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now()

	var session models.FocusSession
	err = tx.GetContext(ctx, &session, `
		SELECT `+sessionColumns+`
		FROM focus_sessions
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, sessionID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("session")
	}
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, apperrors.Conflict("session already finished")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE focus_sessions
		SET status = 'completed', is_completed = true, actual_duration = $3, completed_at = $4
		WHERE id = $1 AND user_id = $2
	`, sessionID, userID, actualDuration, now)
	if err != nil {
		return nil, err
	}

	stats, err := lockStats(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	xpGained := stats.ApplyCompletion(actualDuration, now)

	var unlocked []models.Achievement
	for _, achievement := range catalog {
		if !achievement.EligibleFor(stats) {
			continue
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO user_achievements (user_id, achievement_id, unlocked_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, achievement_id) DO NOTHING
		`, userID, achievement.ID, now)
		if err != nil {
			return nil, err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			// unlocked on an earlier completion
			continue
		}
		unlocked = append(unlocked, achievement)
		stats.GrantXP(achievement.XPReward)
		xpGained += achievement.XPReward
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE user_stats
		SET level = $2, total_xp = $3, current_streak = $4, longest_streak = $5,
		    total_focus_time = $6, total_sessions = $7, last_active_date = $8, updated_at = $9
		WHERE user_id = $1
	`, userID, stats.Level, stats.TotalXP, stats.CurrentStreak, stats.LongestStreak,
		stats.TotalFocusTime, stats.TotalSessions, stats.LastActiveDate, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	session.Status = models.SessionStatusCompleted
	session.IsCompleted = true
	session.ActualDuration = &actualDuration
	session.CompletedAt = &now

	return &models.CompletionResult{
		XPGained: xpGained,
		Stats:    stats,
		Unlocked: unlocked,
		Session:  &session,
	}, nil
}

// lockStats returns the user's stats row under FOR UPDATE, inserting a zeroed
// row first if the user has none yet.
func lockStats(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.UserStats, error) {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO user_stats (user_id, level)
		VALUES ($1, 1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return nil, err
	}

	var stats models.UserStats
	err = tx.GetContext(ctx, &stats, `
		SELECT id, user_id, level, total_xp, current_streak, longest_streak,
		       total_focus_time, total_sessions, last_active_date, created_at, updated_at
		FROM user_stats
		WHERE user_id = $1
		FOR UPDATE
	`, userID)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListRecentActive returns the newest active sessions across all users for the
// community feed
func (r *SessionRepositoryImpl) ListRecentActive(ctx context.Context, limit int) ([]models.ActiveFeedEntry, error) {
	entries := []models.ActiveFeedEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT s.id, u.name AS user_name, u.image AS user_image, s.title,
		       c.name AS category_name, c.color AS category_color,
		       s.planned_duration, s.started_at
		FROM focus_sessions s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN categories c ON c.id = s.category_id
		WHERE s.status = 'active'
		ORDER BY s.started_at DESC
		LIMIT $1
	`, limit)
	return entries, err
}

// CompletedSessionsSince returns the caller's completed sessions started at or
// after the given instant, oldest first
func (r *SessionRepositoryImpl) CompletedSessionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.FocusSession, error) {
	sessions := []models.FocusSession{}
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT `+sessionColumns+`
		FROM focus_sessions
		WHERE user_id = $1 AND is_completed = true AND started_at >= $2
		ORDER BY started_at
	`, userID, since)
	return sessions, err
}

// StatsRepositoryImpl implements StatsRepository for PostgreSQL
type StatsRepositoryImpl struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new PostgreSQL stats repository
func NewStatsRepository(db *sqlx.DB) ports.StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

// GetOrCreateStats returns the user's stats row, creating a zeroed one if
// absent
func (r *StatsRepositoryImpl) GetOrCreateStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_stats (user_id, level)
		VALUES ($1, 1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return nil, err
	}

	var stats models.UserStats
	err = r.db.GetContext(ctx, &stats, `
		SELECT id, user_id, level, total_xp, current_streak, longest_streak,
		       total_focus_time, total_sessions, last_active_date, created_at, updated_at
		FROM user_stats
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
