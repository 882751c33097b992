package models

import (
	"time"

	"github.com/google/uuid"
)

// Gamification constants. XP accrues at a fixed rate per focused minute and
// levels are a pure function of cumulative XP.
const (
	XPPerMinute = 2
	XPPerLevel  = 1000
)

// LevelForXP returns the level implied by a cumulative XP total.
// Invariant: level == floor(totalXp/1000) + 1, never stored independently.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/XPPerLevel + 1
}

// UserStats is the per-user aggregate row, created lazily with zeroed counters.
type UserStats struct {
	ID             int64      `json:"id" db:"id"`
	UserID         uuid.UUID  `json:"userId" db:"user_id"`
	Level          int        `json:"level" db:"level"`
	TotalXP        int        `json:"totalXp" db:"total_xp"`
	CurrentStreak  int        `json:"currentStreak" db:"current_streak"`
	LongestStreak  int        `json:"longestStreak" db:"longest_streak"`
	TotalFocusTime int        `json:"totalFocusTime" db:"total_focus_time"`
	TotalSessions  int        `json:"totalSessions" db:"total_sessions"`
	LastActiveDate *time.Time `json:"lastActiveDate,omitempty" db:"last_active_date"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// NewUserStats returns a zeroed stats row for a user.
func NewUserStats(userID uuid.UUID) *UserStats {
	return &UserStats{UserID: userID, Level: 1}
}

// sameDay reports whether a and b fall on the same calendar day in local time.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ApplyCompletion folds a completed session into the aggregates and returns the
// XP gained from it. Streak counts consecutive active calendar days: completing
// again on the same day leaves it unchanged, the day after extends it, any gap
// resets it to one.
func (s *UserStats) ApplyCompletion(actualDuration int, now time.Time) int {
	xp := actualDuration * XPPerMinute

	s.TotalFocusTime += actualDuration
	s.TotalSessions++
	s.TotalXP += xp
	s.Level = LevelForXP(s.TotalXP)

	switch {
	case s.LastActiveDate == nil:
		s.CurrentStreak = 1
	case sameDay(*s.LastActiveDate, now):
		// already counted today
	case sameDay(s.LastActiveDate.AddDate(0, 0, 1), now):
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}

	active := now
	s.LastActiveDate = &active
	return xp
}

// GrantXP adds bonus XP (achievement rewards) and recomputes the level.
func (s *UserStats) GrantXP(xp int) {
	if xp <= 0 {
		return
	}
	s.TotalXP += xp
	s.Level = LevelForXP(s.TotalXP)
}
