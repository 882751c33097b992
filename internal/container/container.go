package container

import (
	"fmt"

	"focusflow/adapters/postgres"
	"focusflow/app"
	"focusflow/internal/config"
	"focusflow/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	UserRepo        ports.UserRepository
	AuthRepo        ports.AuthRepository
	CategoryRepo    ports.CategoryRepository
	SessionRepo     ports.SessionRepository
	StatsRepo       ports.StatsRepository
	AchievementRepo ports.AchievementRepository
	TodoRepo        ports.TodoRepository
	ReportingRepo   ports.ReportingRepository

	// Services
	SessionService *app.SessionService
	ReportService  *app.ReportService
	TodoService    *app.TodoService
	ExportService  *app.ExportService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	return &Container{Config: cfg}, nil
}

// InitWithDatabase initializes components that require database access
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	c.DB = db
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.UserRepo = postgres.NewUserRepository(db)
	c.AuthRepo = postgres.NewAuthRepository(db)
	c.CategoryRepo = postgres.NewCategoryRepository(db)
	c.SessionRepo = postgres.NewSessionRepository(db)
	c.StatsRepo = postgres.NewStatsRepository(db)
	c.AchievementRepo = postgres.NewAchievementRepository(db)
	c.TodoRepo = postgres.NewTodoRepository(db)
	c.ReportingRepo = postgres.NewReportingRepository(db)

	c.SessionService = app.NewSessionService(c.SessionRepo, c.AchievementRepo)
	c.ReportService = app.NewReportService(c.StatsRepo, c.SessionRepo, c.AchievementRepo, c.ReportingRepo)
	c.TodoService = app.NewTodoService(c.TodoRepo)
	c.ExportService = app.NewExportService(c.ReportService)

	return nil
}
