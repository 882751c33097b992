package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle state of a focus session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusPaused    SessionStatus = "paused"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Planned durations are minutes, bounded to one minute through eight hours.
const (
	MinPlannedDuration = 1
	MaxPlannedDuration = 480
)

// MaxTitleLength bounds session and todo titles.
const MaxTitleLength = 200

// Valid reports whether s is one of the known statuses.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusActive, SessionStatusPaused, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

// CanTransition reports whether a session in status s may move to target.
// active <-> paused; either may terminate in completed or cancelled. Re-issuing
// the current status is allowed so retried requests succeed as no-ops.
func (s SessionStatus) CanTransition(target SessionStatus) bool {
	if s.Terminal() || !target.Valid() {
		return false
	}
	return true
}

// FocusSession is a timed focus-work interval owned by a user.
type FocusSession struct {
	ID              int64         `json:"id" db:"id"`
	UserID          uuid.UUID     `json:"userId" db:"user_id"`
	CategoryID      *int64        `json:"categoryId,omitempty" db:"category_id"`
	Title           *string       `json:"title,omitempty" db:"title"`
	PlannedDuration int           `json:"plannedDuration" db:"planned_duration"`
	ActualDuration  *int          `json:"actualDuration,omitempty" db:"actual_duration"`
	StartedAt       time.Time     `json:"startedAt" db:"started_at"`
	CompletedAt     *time.Time    `json:"completedAt,omitempty" db:"completed_at"`
	Status          SessionStatus `json:"status" db:"status"`
	IsCompleted     bool          `json:"isCompleted" db:"is_completed"`

	// Populated by joined reads, nil otherwise.
	Category *Category `json:"category,omitempty" db:"-"`
}

// ActiveFeedEntry is one row of the public community feed: a currently active
// session with the owner's public profile and category.
type ActiveFeedEntry struct {
	ID              int64     `json:"id" db:"id"`
	UserName        string    `json:"userName" db:"user_name"`
	UserImage       *string   `json:"userImage,omitempty" db:"user_image"`
	Title           *string   `json:"title,omitempty" db:"title"`
	CategoryName    *string   `json:"categoryName,omitempty" db:"category_name"`
	CategoryColor   *string   `json:"categoryColor,omitempty" db:"category_color"`
	PlannedDuration int       `json:"plannedDuration" db:"planned_duration"`
	StartedAt       time.Time `json:"startedAt" db:"started_at"`
}
