package ui

import (
	"log"
	"net/http"
	"time"

	"focusflow/app"
	"focusflow/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
)

// Server is the HTTP surface of the application: a chi router over the
// lifecycle, reporting, todo and export services.
type Server struct {
	router     *chi.Mux
	auth       ports.AuthRepository
	categories ports.CategoryRepository
	sessions   *app.SessionService
	reports    *app.ReportService
	todos      *app.TodoService
	exports    *app.ExportService
	db         *sqlx.DB
}

// NewServer creates the HTTP server and wires its routes
func NewServer(auth ports.AuthRepository, categories ports.CategoryRepository, sessions *app.SessionService, reports *app.ReportService, todos *app.TodoService, exports *app.ExportService, db *sqlx.DB) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		auth:       auth,
		categories: categories,
		sessions:   sessions,
		reports:    reports,
		todos:      todos,
		exports:    exports,
		db:         db,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	// Public community endpoints
	s.router.Get("/api/community/leaderboard", s.handleLeaderboard)
	s.router.Get("/api/community/active", s.handleActiveFeed)

	// User-scoped endpoints
	s.router.Group(func(r chi.Router) {
		r.Use(s.requireUser)

		r.Get("/api/dashboard", s.handleDashboard)
		r.Get("/api/analytics/weekly", s.handleWeeklyAnalytics)
		r.Get("/api/analytics/summary", s.handleFocusSummary)
		r.Get("/api/analytics/export", s.handleAnalyticsExport)
		r.Get("/api/rank", s.handleUserRank)
		r.Get("/api/categories", s.handleCategories)

		r.Post("/api/sessions", s.handleStartSession)
		r.Get("/api/sessions/active", s.handleActiveSession)
		r.Post("/api/sessions/{id}/complete", s.handleCompleteSession)
		r.Patch("/api/sessions/{id}/status", s.handleUpdateSessionStatus)

		r.Get("/api/todos", s.handleListTodos)
		r.Post("/api/todos", s.handleCreateTodo)
		r.Patch("/api/todos/{id}", s.handleUpdateTodo)
		r.Delete("/api/todos/{id}", s.handleDeleteTodo)
		r.Post("/api/todos/{id}/toggle", s.handleToggleTodo)
	})
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	log.Printf("Starting FocusFlow server on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// handleHealth reports liveness and database reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
