package ports

import (
	"context"
	"time"

	"focusflow/models"

	"github.com/google/uuid"
)

// TodoUpdate carries the fields of a partial todo update. Nil means "leave
// unchanged".
type TodoUpdate struct {
	Title       *string
	Description *string
	CategoryID  *int64
	Priority    *models.TodoPriority
	DueDate     *time.Time
	IsCompleted *bool
}

// TodoRepository defines the interface for todo data operations. Mutations are
// owner-scoped and yield NOT_FOUND when the id does not resolve under the
// caller's id.
type TodoRepository interface {
	// ListTodos returns the caller's todos newest first, with category joins.
	ListTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error)

	// CreateTodo inserts a todo and fills its id and timestamps.
	CreateTodo(ctx context.Context, todo *models.Todo) error

	// GetTodo retrieves one of the caller's todos by id.
	GetTodo(ctx context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error)

	// UpdateTodo applies a partial update to one of the caller's todos.
	UpdateTodo(ctx context.Context, userID uuid.UUID, todoID int64, update TodoUpdate) error

	// DeleteTodo removes one of the caller's todos.
	DeleteTodo(ctx context.Context, userID uuid.UUID, todoID int64) error

	// SetTodoCompletion flips completion state; completedAt is stored when
	// completing and cleared when reopening.
	SetTodoCompletion(ctx context.Context, userID uuid.UUID, todoID int64, completed bool, completedAt *time.Time) error
}
