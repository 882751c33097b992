package ui

import (
	"context"
	"net/http"
	"strings"

	apperrors "focusflow/internal/errors"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "focusflow.userID"

// requireUser resolves the Authorization bearer token to a user id and stores
// it on the request context. Missing, malformed or expired tokens are rejected
// before any handler runs.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, apperrors.Unauthorized("missing Authorization header"))
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, apperrors.Unauthorized("Authorization header must be a bearer token"))
			return
		}

		token, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			writeError(w, apperrors.Unauthorized("malformed bearer token"))
			return
		}

		session, err := s.auth.ResolveToken(r.Context(), token)
		if err != nil {
			if apperrors.IsNotFound(err) {
				writeError(w, apperrors.Unauthorized("invalid or expired token"))
				return
			}
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, session.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID returns the authenticated user id stored by requireUser.
func userID(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(userIDKey).(uuid.UUID)
	return id
}
