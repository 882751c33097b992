package ui

import (
	"context"
	"time"

	apperrors "focusflow/internal/errors"
	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
)

// Function-field fakes: nil fields fall back to empty results so each test
// only wires the calls it cares about.

type fakeAuthRepo struct {
	session *models.AuthSession
}

func (f *fakeAuthRepo) ResolveToken(_ context.Context, token uuid.UUID) (*models.AuthSession, error) {
	if f.session != nil && f.session.Token == token {
		return f.session, nil
	}
	return nil, apperrors.NotFound("auth session")
}

func (f *fakeAuthRepo) CreateSession(_ context.Context, userID uuid.UUID, ttl time.Duration) (*models.AuthSession, error) {
	return &models.AuthSession{Token: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(ttl)}, nil
}

type fakeCategoryRepo struct {
	categories []models.Category
}

func (f *fakeCategoryRepo) ListCategories(context.Context) ([]models.Category, error) {
	return f.categories, nil
}

type fakeSessionRepo struct {
	createSession  func(session *models.FocusSession) error
	hasOpen        func(userID uuid.UUID) (bool, error)
	active         func(userID uuid.UUID) (*models.FocusSession, error)
	get            func(userID uuid.UUID, sessionID int64) (*models.FocusSession, error)
	updateStatus   func(userID uuid.UUID, sessionID int64, status models.SessionStatus) error
	complete       func(userID uuid.UUID, sessionID int64, actualDuration int, catalog []models.Achievement) (*models.CompletionResult, error)
	recentActive   func(limit int) ([]models.ActiveFeedEntry, error)
	completedSince func(userID uuid.UUID, since time.Time) ([]models.FocusSession, error)
}

func (f *fakeSessionRepo) CreateSession(_ context.Context, session *models.FocusSession) error {
	if f.createSession == nil {
		session.ID = 1
		session.Status = models.SessionStatusActive
		session.StartedAt = time.Now()
		return nil
	}
	return f.createSession(session)
}

func (f *fakeSessionRepo) HasOpenSession(_ context.Context, userID uuid.UUID) (bool, error) {
	if f.hasOpen == nil {
		return false, nil
	}
	return f.hasOpen(userID)
}

func (f *fakeSessionRepo) ActiveSession(_ context.Context, userID uuid.UUID) (*models.FocusSession, error) {
	if f.active == nil {
		return nil, nil
	}
	return f.active(userID)
}

func (f *fakeSessionRepo) GetSession(_ context.Context, userID uuid.UUID, sessionID int64) (*models.FocusSession, error) {
	if f.get == nil {
		return nil, apperrors.NotFound("session")
	}
	return f.get(userID, sessionID)
}

func (f *fakeSessionRepo) UpdateStatus(_ context.Context, userID uuid.UUID, sessionID int64, status models.SessionStatus) error {
	if f.updateStatus == nil {
		return nil
	}
	return f.updateStatus(userID, sessionID, status)
}

func (f *fakeSessionRepo) CompleteSession(_ context.Context, userID uuid.UUID, sessionID int64, actualDuration int, catalog []models.Achievement) (*models.CompletionResult, error) {
	if f.complete == nil {
		return nil, apperrors.NotFound("session")
	}
	return f.complete(userID, sessionID, actualDuration, catalog)
}

func (f *fakeSessionRepo) ListRecentActive(_ context.Context, limit int) ([]models.ActiveFeedEntry, error) {
	if f.recentActive == nil {
		return []models.ActiveFeedEntry{}, nil
	}
	return f.recentActive(limit)
}

func (f *fakeSessionRepo) CompletedSessionsSince(_ context.Context, userID uuid.UUID, since time.Time) ([]models.FocusSession, error) {
	if f.completedSince == nil {
		return []models.FocusSession{}, nil
	}
	return f.completedSince(userID, since)
}

type fakeAchievementRepo struct {
	catalog  []models.Achievement
	unlocked []models.UserAchievement
}

func (f *fakeAchievementRepo) ListActive(context.Context) ([]models.Achievement, error) {
	if f.catalog == nil {
		return []models.Achievement{}, nil
	}
	return f.catalog, nil
}

func (f *fakeAchievementRepo) ListForUser(context.Context, uuid.UUID) ([]models.UserAchievement, error) {
	if f.unlocked == nil {
		return []models.UserAchievement{}, nil
	}
	return f.unlocked, nil
}

type fakeStatsRepo struct {
	stats *models.UserStats
}

func (f *fakeStatsRepo) GetOrCreateStats(_ context.Context, userID uuid.UUID) (*models.UserStats, error) {
	if f.stats != nil {
		return f.stats, nil
	}
	return models.NewUserStats(userID), nil
}

type fakeReportingRepo struct {
	leaderboard func(since time.Time, limit int) ([]models.LeaderboardEntry, error)
	periodTotal int
	usersAbove  int
	activeUsers int
}

func (f *fakeReportingRepo) FocusTimeBetween(context.Context, uuid.UUID, time.Time, time.Time) (int, error) {
	return 0, nil
}

func (f *fakeReportingRepo) Leaderboard(_ context.Context, since time.Time, limit int) ([]models.LeaderboardEntry, error) {
	if f.leaderboard == nil {
		return []models.LeaderboardEntry{}, nil
	}
	return f.leaderboard(since, limit)
}

func (f *fakeReportingRepo) PeriodTotal(context.Context, uuid.UUID, time.Time) (int, error) {
	return f.periodTotal, nil
}

func (f *fakeReportingRepo) CountUsersAbove(context.Context, uuid.UUID, time.Time, int) (int, error) {
	return f.usersAbove, nil
}

func (f *fakeReportingRepo) CountActiveUsers(context.Context, time.Time) (int, error) {
	return f.activeUsers, nil
}

type fakeTodoRepo struct {
	list          func(userID uuid.UUID) ([]models.Todo, error)
	create        func(todo *models.Todo) error
	get           func(userID uuid.UUID, todoID int64) (*models.Todo, error)
	update        func(userID uuid.UUID, todoID int64, update ports.TodoUpdate) error
	delete        func(userID uuid.UUID, todoID int64) error
	setCompletion func(userID uuid.UUID, todoID int64, completed bool, completedAt *time.Time) error
}

func (f *fakeTodoRepo) ListTodos(_ context.Context, userID uuid.UUID) ([]models.Todo, error) {
	if f.list == nil {
		return []models.Todo{}, nil
	}
	return f.list(userID)
}

func (f *fakeTodoRepo) CreateTodo(_ context.Context, todo *models.Todo) error {
	if f.create == nil {
		todo.ID = 1
		todo.CreatedAt = time.Now()
		todo.UpdatedAt = todo.CreatedAt
		return nil
	}
	return f.create(todo)
}

func (f *fakeTodoRepo) GetTodo(_ context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error) {
	if f.get == nil {
		return nil, apperrors.NotFound("todo")
	}
	return f.get(userID, todoID)
}

func (f *fakeTodoRepo) UpdateTodo(_ context.Context, userID uuid.UUID, todoID int64, update ports.TodoUpdate) error {
	if f.update == nil {
		return apperrors.NotFound("todo")
	}
	return f.update(userID, todoID, update)
}

func (f *fakeTodoRepo) DeleteTodo(_ context.Context, userID uuid.UUID, todoID int64) error {
	if f.delete == nil {
		return apperrors.NotFound("todo")
	}
	return f.delete(userID, todoID)
}

func (f *fakeTodoRepo) SetTodoCompletion(_ context.Context, userID uuid.UUID, todoID int64, completed bool, completedAt *time.Time) error {
	if f.setCompletion == nil {
		return nil
	}
	return f.setCompletion(userID, todoID, completed, completedAt)
}
