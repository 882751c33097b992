package app

import (
	"context"
	"strings"
	"time"

	apperrors "focusflow/internal/errors"
	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
)

// TodoService owns todo CRUD and completion toggling. All operations are
// scoped to the calling user.
type TodoService struct {
	todos ports.TodoRepository
}

// CreateTodoRequest defines inputs for creating a todo
type CreateTodoRequest struct {
	Title       string              `json:"title"`
	Description *string             `json:"description,omitempty"`
	CategoryID  *int64              `json:"categoryId,omitempty"`
	Priority    models.TodoPriority `json:"priority,omitempty"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
}

// UpdateTodoRequest defines inputs for a partial todo update. Nil fields are
// left unchanged.
type UpdateTodoRequest struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	CategoryID  *int64               `json:"categoryId,omitempty"`
	Priority    *models.TodoPriority `json:"priority,omitempty"`
	DueDate     *time.Time           `json:"dueDate,omitempty"`
	IsCompleted *bool                `json:"isCompleted,omitempty"`
}

// NewTodoService creates a todo service
func NewTodoService(todos ports.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// ListTodos returns the caller's todos newest first.
func (s *TodoService) ListTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	return s.todos.ListTodos(ctx, userID)
}

// CreateTodo validates and inserts a new todo.
func (s *TodoService) CreateTodo(ctx context.Context, userID uuid.UUID, req CreateTodoRequest) (*models.Todo, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.ValidationError("title must not be empty")
	}
	if len(title) > models.MaxTitleLength {
		return nil, apperrors.ValidationError("title too long")
	}

	priority := req.Priority
	if priority == "" {
		priority = models.TodoPriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.ValidationError("priority must be one of low, medium, high")
	}

	todo := &models.Todo{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
	}
	if err := s.todos.CreateTodo(ctx, todo); err != nil {
		return nil, apperrors.Wrap(err, "failed to create todo")
	}

	return todo, nil
}

// UpdateTodo applies a partial update to one of the caller's todos.
func (s *TodoService) UpdateTodo(ctx context.Context, userID uuid.UUID, todoID int64, req UpdateTodoRequest) (*models.Todo, error) {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.ValidationError("title must not be empty")
		}
		if len(title) > models.MaxTitleLength {
			return nil, apperrors.ValidationError("title too long")
		}
		req.Title = &title
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, apperrors.ValidationError("priority must be one of low, medium, high")
	}

	update := ports.TodoUpdate{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	}
	if err := s.todos.UpdateTodo(ctx, userID, todoID, update); err != nil {
		return nil, err
	}

	return s.todos.GetTodo(ctx, userID, todoID)
}

// DeleteTodo removes one of the caller's todos.
func (s *TodoService) DeleteTodo(ctx context.Context, userID uuid.UUID, todoID int64) error {
	return s.todos.DeleteTodo(ctx, userID, todoID)
}

// ToggleTodo flips completion on one of the caller's todos. Toggling twice
// restores the original completion state and timestamp pairing.
func (s *TodoService) ToggleTodo(ctx context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error) {
	todo, err := s.todos.GetTodo(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	completed := !todo.IsCompleted
	var completedAt *time.Time
	if completed {
		now := time.Now()
		completedAt = &now
	}

	if err := s.todos.SetTodoCompletion(ctx, userID, todoID, completed, completedAt); err != nil {
		return nil, err
	}

	todo.IsCompleted = completed
	todo.CompletedAt = completedAt
	return todo, nil
}
