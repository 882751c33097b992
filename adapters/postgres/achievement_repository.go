package postgres

import (
	"context"

	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AchievementRepositoryImpl implements AchievementRepository for PostgreSQL
type AchievementRepositoryImpl struct {
	db *sqlx.DB
}

// NewAchievementRepository creates a new PostgreSQL achievement repository
func NewAchievementRepository(db *sqlx.DB) ports.AchievementRepository {
	return &AchievementRepositoryImpl{db: db}
}

// ListActive returns the active achievement catalog
func (r *AchievementRepositoryImpl) ListActive(ctx context.Context) ([]models.Achievement, error) {
	achievements := []models.Achievement{}
	err := r.db.SelectContext(ctx, &achievements, `
		SELECT id, name, description, icon, badge_color, requirement, type, xp_reward, is_active, created_at
		FROM achievements
		WHERE is_active = true
		ORDER BY requirement
	`)
	return achievements, err
}

// ListForUser returns the user's unlocked achievements with catalog details
func (r *AchievementRepositoryImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserAchievement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ua.id, ua.user_id, ua.achievement_id, ua.unlocked_at,
		       a.id, a.name, a.description, a.icon, a.badge_color, a.requirement, a.type, a.xp_reward, a.is_active, a.created_at
		FROM user_achievements ua
		JOIN achievements a ON a.id = ua.achievement_id
		WHERE ua.user_id = $1
		ORDER BY ua.unlocked_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unlocked := []models.UserAchievement{}
	for rows.Next() {
		var ua models.UserAchievement
		var a models.Achievement
		err := rows.Scan(
			&ua.ID, &ua.UserID, &ua.AchievementID, &ua.UnlockedAt,
			&a.ID, &a.Name, &a.Description, &a.Icon, &a.BadgeColor, &a.Requirement, &a.Type, &a.XPReward, &a.IsActive, &a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		ua.Achievement = &a
		unlocked = append(unlocked, ua)
	}

	return unlocked, rows.Err()
}
