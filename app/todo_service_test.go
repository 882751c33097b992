package app

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "focusflow/internal/errors"
	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoValidation(t *testing.T) {
	service := NewTodoService(new(MockTodoRepository))
	userID := uuid.New()

	t.Run("empty title", func(t *testing.T) {
		_, err := service.CreateTodo(context.Background(), userID, CreateTodoRequest{Title: "   "})
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationError))
	})

	t.Run("overlong title", func(t *testing.T) {
		_, err := service.CreateTodo(context.Background(), userID, CreateTodoRequest{Title: strings.Repeat("x", 201)})
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationError))
	})

	t.Run("unknown priority", func(t *testing.T) {
		_, err := service.CreateTodo(context.Background(), userID, CreateTodoRequest{Title: "buy milk", Priority: "urgent"})
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationError))
	})
}

func TestCreateTodoDefaultsPriority(t *testing.T) {
	todos := new(MockTodoRepository)
	service := NewTodoService(todos)
	userID := uuid.New()

	todos.On("CreateTodo", mock.Anything, mock.MatchedBy(func(todo *models.Todo) bool {
		return todo.Priority == models.TodoPriorityMedium && todo.Title == "buy milk"
	})).Return(nil)

	todo, err := service.CreateTodo(context.Background(), userID, CreateTodoRequest{Title: "  buy milk  "})
	require.NoError(t, err)
	assert.Equal(t, models.TodoPriorityMedium, todo.Priority)
	assert.Equal(t, "buy milk", todo.Title)
	todos.AssertExpectations(t)
}

func TestUpdateTodoReturnsFreshRow(t *testing.T) {
	todos := new(MockTodoRepository)
	service := NewTodoService(todos)
	userID := uuid.New()

	title := "write report"
	todos.On("UpdateTodo", mock.Anything, userID, int64(4), mock.MatchedBy(func(update ports.TodoUpdate) bool {
		return update.Title != nil && *update.Title == title
	})).Return(nil)
	todos.On("GetTodo", mock.Anything, userID, int64(4)).Return(&models.Todo{ID: 4, UserID: userID, Title: title}, nil)

	todo, err := service.UpdateTodo(context.Background(), userID, 4, UpdateTodoRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, todo.Title)
	todos.AssertExpectations(t)
}

func TestUpdateTodoRejectsBlankTitle(t *testing.T) {
	todos := new(MockTodoRepository)
	service := NewTodoService(todos)

	blank := "  "
	_, err := service.UpdateTodo(context.Background(), uuid.New(), 4, UpdateTodoRequest{Title: &blank})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationError))
	todos.AssertNotCalled(t, "UpdateTodo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTodoNotFound(t *testing.T) {
	todos := new(MockTodoRepository)
	service := NewTodoService(todos)
	userID := uuid.New()

	todos.On("UpdateTodo", mock.Anything, userID, int64(99), mock.Anything).Return(apperrors.NotFound("todo"))

	done := true
	_, err := service.UpdateTodo(context.Background(), userID, 99, UpdateTodoRequest{IsCompleted: &done})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestToggleTodo(t *testing.T) {
	userID := uuid.New()

	t.Run("completes an open todo and stamps completedAt", func(t *testing.T) {
		todos := new(MockTodoRepository)
		service := NewTodoService(todos)

		todos.On("GetTodo", mock.Anything, userID, int64(7)).Return(&models.Todo{ID: 7, UserID: userID, Title: "read", IsCompleted: false}, nil)
		todos.On("SetTodoCompletion", mock.Anything, userID, int64(7), true, mock.MatchedBy(func(at *time.Time) bool {
			return at != nil
		})).Return(nil)

		todo, err := service.ToggleTodo(context.Background(), userID, 7)
		require.NoError(t, err)
		assert.True(t, todo.IsCompleted)
		assert.NotNil(t, todo.CompletedAt)
	})

	t.Run("reopens a completed todo and clears completedAt", func(t *testing.T) {
		todos := new(MockTodoRepository)
		service := NewTodoService(todos)

		done := time.Now()
		todos.On("GetTodo", mock.Anything, userID, int64(8)).Return(&models.Todo{ID: 8, UserID: userID, Title: "read", IsCompleted: true, CompletedAt: &done}, nil)
		todos.On("SetTodoCompletion", mock.Anything, userID, int64(8), false, (*time.Time)(nil)).Return(nil)

		todo, err := service.ToggleTodo(context.Background(), userID, 8)
		require.NoError(t, err)
		assert.False(t, todo.IsCompleted)
		assert.Nil(t, todo.CompletedAt)
	})
}
