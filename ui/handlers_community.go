package ui

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	apperrors "focusflow/internal/errors"
	"focusflow/models"
)

// queryPeriod reads ?period=, defaulting to today.
func queryPeriod(r *http.Request) (models.Period, error) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		return models.PeriodToday, nil
	}
	period := models.Period(raw)
	if !period.Valid() {
		return "", apperrors.InvalidInput("period must be one of today, week, month")
	}
	return period, nil
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	period, err := queryPeriod(r)
	if err != nil {
		writeError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, apperrors.InvalidInput("limit must be an integer"))
			return
		}
	}

	entries, err := s.reports.GetLeaderboard(r.Context(), period, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleActiveFeed(w http.ResponseWriter, r *http.Request) {
	entries, err := s.reports.GetActiveSessions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleUserRank(w http.ResponseWriter, r *http.Request) {
	period, err := queryPeriod(r)
	if err != nil {
		writeError(w, err)
		return
	}

	rank, err := s.reports.GetUserRank(r.Context(), userID(r), period)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rank)
}

func (s *Server) handleWeeklyAnalytics(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.reports.GetWeeklyAnalytics(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (s *Server) handleFocusSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.reports.GetFocusSummary(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAnalyticsExport(w http.ResponseWriter, r *http.Request) {
	period, err := queryPeriod(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// Build the workbook fully before touching headers so failures can still
	// produce a JSON error response.
	var buf bytes.Buffer
	if err := s.exports.WriteWorkbook(r.Context(), userID(r), period, &buf); err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("focusflow-%s-%s.xlsx", period, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Failed to stream workbook: %v", err)
	}
}
