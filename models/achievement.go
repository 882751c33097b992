package models

import (
	"time"

	"github.com/google/uuid"
)

// AchievementType tags which aggregate an achievement's requirement is
// measured against.
type AchievementType string

const (
	AchievementTypeStreak    AchievementType = "streak"
	AchievementTypeTotalTime AchievementType = "total_time"
	AchievementTypeSessions  AchievementType = "sessions"
)

// Achievement is a static catalog entry, read-only at runtime.
type Achievement struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Icon        *string         `json:"icon,omitempty" db:"icon"`
	BadgeColor  string          `json:"badgeColor" db:"badge_color"`
	Requirement int             `json:"requirement" db:"requirement"`
	Type        AchievementType `json:"type" db:"type"`
	XPReward    int             `json:"xpReward" db:"xp_reward"`
	IsActive    bool            `json:"isActive" db:"is_active"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// EligibleFor reports whether the given stats meet the achievement's threshold.
// Unknown types never unlock.
func (a Achievement) EligibleFor(stats *UserStats) bool {
	switch a.Type {
	case AchievementTypeStreak:
		return stats.CurrentStreak >= a.Requirement
	case AchievementTypeTotalTime:
		return stats.TotalFocusTime >= a.Requirement
	case AchievementTypeSessions:
		return stats.TotalSessions >= a.Requirement
	}
	return false
}

// UserAchievement records that a user unlocked an achievement. Created once
// per (user, achievement) pair, never updated or deleted.
type UserAchievement struct {
	ID            int64     `json:"id" db:"id"`
	UserID        uuid.UUID `json:"userId" db:"user_id"`
	AchievementID int64     `json:"achievementId" db:"achievement_id"`
	UnlockedAt    time.Time `json:"unlockedAt" db:"unlocked_at"`

	// Populated by joined reads.
	Achievement *Achievement `json:"achievement,omitempty" db:"-"`
}
