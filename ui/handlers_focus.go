package ui

import (
	"net/http"
	"strconv"

	"focusflow/app"
	apperrors "focusflow/internal/errors"
	"focusflow/models"

	"github.com/go-chi/chi/v5"
)

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.InvalidInput("id must be a positive integer")
	}
	return id, nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.reports.GetDashboard(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req app.StartSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	session, err := s.sessions.StartSession(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleActiveSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.ActiveSession(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if session == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"session": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"session": session})
}

type completeSessionRequest struct {
	ActualDuration *int `json:"actualDuration"`
}

func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req completeSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ActualDuration == nil {
		writeError(w, apperrors.ValidationError("actualDuration is required"))
		return
	}

	result, err := s.sessions.CompleteSession(r.Context(), userID(r), sessionID, *req.ActualDuration)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type updateStatusRequest struct {
	Status models.SessionStatus `json:"status"`
}

func (s *Server) handleUpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.sessions.UpdateSessionStatus(r.Context(), userID(r), sessionID, req.Status); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
