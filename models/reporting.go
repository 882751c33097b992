package models

import (
	"time"

	"github.com/google/uuid"
)

// Period is a reporting time window.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// Start returns the inclusive lower bound of the window relative to now:
// start of today (local), now minus 7 days, or now minus 30 days.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, 0, -30)
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

// Dashboard is the per-user dashboard snapshot.
type Dashboard struct {
	Stats           *UserStats        `json:"stats"`
	TodaysFocusTime int               `json:"todaysFocusTime"`
	Achievements    []UserAchievement `json:"achievements"`
	AllAchievements []Achievement     `json:"allAchievements"`
}

// LeaderboardEntry is one ranked row of the public leaderboard. Users with no
// completed sessions in the period still appear with zero totals.
type LeaderboardEntry struct {
	UserID       uuid.UUID `json:"userId" db:"user_id"`
	UserName     string    `json:"userName" db:"user_name"`
	UserImage    *string   `json:"userImage,omitempty" db:"user_image"`
	TotalTime    int       `json:"totalTime" db:"total_time"`
	SessionCount int       `json:"sessionCount" db:"session_count"`
}

// DailyBucket is one calendar day of the weekly analytics series.
type DailyBucket struct {
	Date         string `json:"date"`
	TotalTime    int    `json:"totalTime"`
	SessionCount int    `json:"sessionCount"`
}

// UserRank is the caller's standing for a period. Percentile is clamped to
// [0,100]; 100 means best.
type UserRank struct {
	Rank             int    `json:"rank"`
	TotalTime        int    `json:"totalTime"`
	Percentile       int    `json:"percentile"`
	TotalActiveUsers int    `json:"totalActiveUsers"`
	Period           Period `json:"period"`
}

// FocusSummary is descriptive statistics over the caller's recent completed
// session durations (minutes).
type FocusSummary struct {
	SessionCount int     `json:"sessionCount"`
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	StdDev       float64 `json:"stdDev"`
	P90          float64 `json:"p90"`
}

// CompletionResult is what a completed session yields: the XP gained (base
// plus any achievement rewards), the updated aggregates, and any achievements
// unlocked by this completion.
type CompletionResult struct {
	XPGained int           `json:"xpGained"`
	Stats    *UserStats    `json:"stats"`
	Unlocked []Achievement `json:"unlocked,omitempty"`
	Session  *FocusSession `json:"session"`
}
