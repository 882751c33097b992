package app

import (
	"context"
	"time"

	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *models.FocusSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) HasOpenSession(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) ActiveSession(ctx context.Context, userID uuid.UUID) (*models.FocusSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FocusSession), args.Error(1)
}

func (m *MockSessionRepository) GetSession(ctx context.Context, userID uuid.UUID, sessionID int64) (*models.FocusSession, error) {
	args := m.Called(ctx, userID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FocusSession), args.Error(1)
}

func (m *MockSessionRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, sessionID int64, status models.SessionStatus) error {
	args := m.Called(ctx, userID, sessionID, status)
	return args.Error(0)
}

func (m *MockSessionRepository) CompleteSession(ctx context.Context, userID uuid.UUID, sessionID int64, actualDuration int, catalog []models.Achievement) (*models.CompletionResult, error) {
	args := m.Called(ctx, userID, sessionID, actualDuration, catalog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompletionResult), args.Error(1)
}

func (m *MockSessionRepository) ListRecentActive(ctx context.Context, limit int) ([]models.ActiveFeedEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActiveFeedEntry), args.Error(1)
}

func (m *MockSessionRepository) CompletedSessionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.FocusSession, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FocusSession), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetOrCreateStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) ListActive(ctx context.Context) ([]models.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserAchievement), args.Error(1)
}

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) FocusTimeBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) Leaderboard(ctx context.Context, since time.Time, limit int) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}

func (m *MockReportingRepository) PeriodTotal(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	args := m.Called(ctx, userID, since)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountUsersAbove(ctx context.Context, excludeUser uuid.UUID, since time.Time, total int) (int, error) {
	args := m.Called(ctx, excludeUser, since, total)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountActiveUsers(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) ListTodos(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Todo), args.Error(1)
}

func (m *MockTodoRepository) CreateTodo(ctx context.Context, todo *models.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockTodoRepository) GetTodo(ctx context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error) {
	args := m.Called(ctx, userID, todoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *MockTodoRepository) UpdateTodo(ctx context.Context, userID uuid.UUID, todoID int64, update ports.TodoUpdate) error {
	args := m.Called(ctx, userID, todoID, update)
	return args.Error(0)
}

func (m *MockTodoRepository) DeleteTodo(ctx context.Context, userID uuid.UUID, todoID int64) error {
	args := m.Called(ctx, userID, todoID)
	return args.Error(0)
}

func (m *MockTodoRepository) SetTodoCompletion(ctx context.Context, userID uuid.UUID, todoID int64, completed bool, completedAt *time.Time) error {
	args := m.Called(ctx, userID, todoID, completed, completedAt)
	return args.Error(0)
}
