package ports

import (
	"context"

	"focusflow/models"

	"github.com/google/uuid"
)

// AchievementRepository defines the interface for the achievement catalog and
// per-user unlock records.
type AchievementRepository interface {
	// ListActive returns the active achievement catalog.
	ListActive(ctx context.Context) ([]models.Achievement, error)

	// ListForUser returns the user's unlocked achievements with catalog details.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserAchievement, error)
}

// CategoryRepository defines the interface for category reads.
type CategoryRepository interface {
	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]models.Category, error)
}
