package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	apperrors "focusflow/internal/errors"
	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const todoColumns = `id, user_id, category_id, title, description, is_completed, priority, due_date, completed_at, created_at, updated_at`

// TodoRepositoryImpl implements TodoRepository for PostgreSQL
type TodoRepositoryImpl struct {
	db *sqlx.DB
}

// NewTodoRepository creates a new PostgreSQL todo repository
func NewTodoRepository(db *sqlx.DB) ports.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

// ListTodos returns the caller's todos newest first, with category joins
func (r *TodoRepositoryImpl) ListTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	todos := []models.Todo{}
	err := r.db.SelectContext(ctx, &todos, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// attachCategories resolves the referenced categories in one query.
func (r *TodoRepositoryImpl) attachCategories(ctx context.Context, todos []models.Todo) error {
	ids := make([]int64, 0, len(todos))
	seen := make(map[int64]bool)
	for _, todo := range todos {
		if todo.CategoryID != nil && !seen[*todo.CategoryID] {
			seen[*todo.CategoryID] = true
			ids = append(ids, *todo.CategoryID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, `
		SELECT id, name, color, icon, is_default, created_at
		FROM categories
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return err
	}

	byID := make(map[int64]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	for i := range todos {
		if todos[i].CategoryID != nil {
			todos[i].Category = byID[*todos[i].CategoryID]
		}
	}
	return nil
}

// CreateTodo inserts a todo and fills its id and timestamps
func (r *TodoRepositoryImpl) CreateTodo(ctx context.Context, todo *models.Todo) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO todos (user_id, category_id, title, description, priority, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, todo.UserID, todo.CategoryID, todo.Title, todo.Description, todo.Priority, todo.DueDate).
		Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)
}

// GetTodo retrieves one of the caller's todos by id
func (r *TodoRepositoryImpl) GetTodo(ctx context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.GetContext(ctx, &todo, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1 AND user_id = $2
	`, todoID, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("todo")
	}
	if err != nil {
		return nil, err
	}

	return &todo, nil
}

// UpdateTodo applies a partial update to one of the caller's todos
func (r *TodoRepositoryImpl) UpdateTodo(ctx context.Context, userID uuid.UUID, todoID int64, update ports.TodoUpdate) error {
	var completedAt interface{}
	setCompletedAt := false
	if update.IsCompleted != nil {
		setCompletedAt = true
		if *update.IsCompleted {
			completedAt = time.Now()
		} else {
			completedAt = nil
		}
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET title        = COALESCE($3, title),
		    description  = COALESCE($4, description),
		    category_id  = COALESCE($5, category_id),
		    priority     = COALESCE($6, priority),
		    due_date     = COALESCE($7, due_date),
		    is_completed = COALESCE($8, is_completed),
		    completed_at = CASE WHEN $9 THEN $10 ELSE completed_at END,
		    updated_at   = NOW()
		WHERE id = $1 AND user_id = $2
	`, todoID, userID, update.Title, update.Description, update.CategoryID,
		update.Priority, update.DueDate, update.IsCompleted, setCompletedAt, completedAt)
	if err != nil {
		return err
	}

	return requireRow(result, "todo")
}

// DeleteTodo removes one of the caller's todos
func (r *TodoRepositoryImpl) DeleteTodo(ctx context.Context, userID uuid.UUID, todoID int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
	`, todoID, userID)
	if err != nil {
		return err
	}

	return requireRow(result, "todo")
}

// SetTodoCompletion flips completion state
func (r *TodoRepositoryImpl) SetTodoCompletion(ctx context.Context, userID uuid.UUID, todoID int64, completed bool, completedAt *time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET is_completed = $3, completed_at = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`, todoID, userID, completed, completedAt)
	if err != nil {
		return err
	}

	return requireRow(result, "todo")
}

// requireRow converts a zero-row mutation into NOT_FOUND.
func requireRow(result sql.Result, resource string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound(resource)
	}
	return nil
}
