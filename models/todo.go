package models

import (
	"time"

	"github.com/google/uuid"
)

// TodoPriority is the urgency label on a todo.
type TodoPriority string

const (
	TodoPriorityLow    TodoPriority = "low"
	TodoPriorityMedium TodoPriority = "medium"
	TodoPriorityHigh   TodoPriority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p TodoPriority) Valid() bool {
	switch p {
	case TodoPriorityLow, TodoPriorityMedium, TodoPriorityHigh:
		return true
	}
	return false
}

// Todo is a user-owned task, optionally linked to a category.
// IsCompleted and CompletedAt are always set together.
type Todo struct {
	ID          int64        `json:"id" db:"id"`
	UserID      uuid.UUID    `json:"userId" db:"user_id"`
	CategoryID  *int64       `json:"categoryId,omitempty" db:"category_id"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description,omitempty" db:"description"`
	IsCompleted bool         `json:"isCompleted" db:"is_completed"`
	Priority    TodoPriority `json:"priority" db:"priority"`
	DueDate     *time.Time   `json:"dueDate,omitempty" db:"due_date"`
	CompletedAt *time.Time   `json:"completedAt,omitempty" db:"completed_at"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`

	// Populated by joined reads.
	Category *Category `json:"category,omitempty" db:"-"`
}
