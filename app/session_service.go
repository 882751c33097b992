package app

import (
	"context"
	"fmt"
	"strings"

	apperrors "focusflow/internal/errors"
	"focusflow/models"
	"focusflow/ports"

	"github.com/google/uuid"
)

// SessionService owns the focus session lifecycle: start, pause/resume/cancel,
// complete, and the caller's active-session lookup.
type SessionService struct {
	sessions     ports.SessionRepository
	achievements ports.AchievementRepository
}

// StartSessionRequest defines inputs for starting a focus session
type StartSessionRequest struct {
	Title           *string `json:"title,omitempty"`
	CategoryID      *int64  `json:"categoryId,omitempty"`
	PlannedDuration int     `json:"plannedDuration"`
}

// NewSessionService creates a session lifecycle service
func NewSessionService(sessions ports.SessionRepository, achievements ports.AchievementRepository) *SessionService {
	return &SessionService{
		sessions:     sessions,
		achievements: achievements,
	}
}

// StartSession creates a new session in status active. A caller with a session
// still in active or paused is rejected: at most one open session per user.
func (s *SessionService) StartSession(ctx context.Context, userID uuid.UUID, req StartSessionRequest) (*models.FocusSession, error) {
	if req.PlannedDuration < models.MinPlannedDuration || req.PlannedDuration > models.MaxPlannedDuration {
		return nil, apperrors.ValidationError(fmt.Sprintf("plannedDuration must be between %d and %d minutes", models.MinPlannedDuration, models.MaxPlannedDuration))
	}
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if len(trimmed) > models.MaxTitleLength {
			return nil, apperrors.ValidationError("title too long")
		}
		if trimmed == "" {
			req.Title = nil
		} else {
			req.Title = &trimmed
		}
	}

	open, err := s.sessions.HasOpenSession(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to check open sessions")
	}
	if open {
		return nil, apperrors.Conflict("an active or paused session already exists")
	}

	session := &models.FocusSession{
		UserID:          userID,
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		PlannedDuration: req.PlannedDuration,
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, apperrors.Wrap(err, "failed to create session")
	}

	return session, nil
}

// UpdateSessionStatus moves one of the caller's sessions between active,
// paused and cancelled. Terminal sessions are not re-enterable.
func (s *SessionService) UpdateSessionStatus(ctx context.Context, userID uuid.UUID, sessionID int64, status models.SessionStatus) error {
	switch status {
	case models.SessionStatusActive, models.SessionStatusPaused, models.SessionStatusCancelled:
	default:
		return apperrors.ValidationError("status must be one of active, paused, cancelled")
	}

	session, err := s.sessions.GetSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if !session.Status.CanTransition(status) {
		return apperrors.Conflict(fmt.Sprintf("cannot move a %s session to %s", session.Status, status))
	}

	return s.sessions.UpdateStatus(ctx, userID, sessionID, status)
}

// CompleteSession terminates a session, credits XP at the fixed per-minute
// rate, folds the duration into the caller's aggregates and unlocks any newly
// earned achievements. The whole update is one transaction.
func (s *SessionService) CompleteSession(ctx context.Context, userID uuid.UUID, sessionID int64, actualDuration int) (*models.CompletionResult, error) {
	if actualDuration < 0 {
		return nil, apperrors.ValidationError("actualDuration must not be negative")
	}

	catalog, err := s.achievements.ListActive(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load achievement catalog")
	}

	return s.sessions.CompleteSession(ctx, userID, sessionID, actualDuration, catalog)
}

// ActiveSession returns the caller's session currently in status active, or
// nil when there is none.
func (s *SessionService) ActiveSession(ctx context.Context, userID uuid.UUID) (*models.FocusSession, error) {
	return s.sessions.ActiveSession(ctx, userID)
}
