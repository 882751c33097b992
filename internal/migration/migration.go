package migration

import (
	"context"
	"log"

	"focusflow/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	steps := []struct {
		name string
		fn   func(context.Context, *sqlx.DB) error
	}{
		{"users", r.createUsersTable},
		{"auth_sessions", r.createAuthSessionsTable},
		{"categories", r.createCategoriesTable},
		{"focus_sessions", r.createFocusSessionsTable},
		{"user_stats", r.createUserStatsTable},
		{"achievements", r.createAchievementsTable},
		{"user_achievements", r.createUserAchievementsTable},
		{"todos", r.createTodosTable},
		{"indexes", r.createIndexes},
		{"seed categories", r.seedCategories},
		{"seed achievements", r.seedAchievements},
	}

	for _, step := range steps {
		if err := step.fn(ctx, db); err != nil {
			return errors.Wrapf(err, "migration step %q failed", step.name)
		}
	}

	return nil
}

func (r *MigrationRunner) createUsersTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			image VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createAuthSessionsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS auth_sessions (
			token UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL
		)
	`)
	return err
}

func (r *MigrationRunner) createCategoriesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			color VARCHAR(20) NOT NULL DEFAULT '#3B82F6',
			icon VARCHAR(50),
			is_default BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createFocusSessionsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS focus_sessions (
			id BIGSERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			category_id BIGINT REFERENCES categories(id),
			title VARCHAR(200),
			planned_duration INTEGER NOT NULL CHECK (planned_duration BETWEEN 1 AND 480),
			actual_duration INTEGER CHECK (actual_duration >= 0),
			started_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMP WITH TIME ZONE,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			is_completed BOOLEAN NOT NULL DEFAULT false
		)
	`)
	return err
}

func (r *MigrationRunner) createUserStatsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS user_stats (
			id BIGSERIAL PRIMARY KEY,
			user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			level INTEGER NOT NULL DEFAULT 1,
			total_xp INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			total_focus_time INTEGER NOT NULL DEFAULT 0,
			total_sessions INTEGER NOT NULL DEFAULT 0,
			last_active_date TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createAchievementsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS achievements (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			description TEXT NOT NULL,
			icon VARCHAR(50),
			badge_color VARCHAR(20) NOT NULL DEFAULT '#10B981',
			requirement INTEGER NOT NULL,
			type VARCHAR(50) NOT NULL,
			xp_reward INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createUserAchievementsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS user_achievements (
			id BIGSERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			achievement_id BIGINT NOT NULL REFERENCES achievements(id),
			unlocked_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, achievement_id)
		)
	`)
	return err
}

func (r *MigrationRunner) createTodosTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id BIGSERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			category_id BIGINT REFERENCES categories(id),
			title VARCHAR(200) NOT NULL,
			description TEXT,
			is_completed BOOLEAN NOT NULL DEFAULT false,
			priority VARCHAR(10) NOT NULL DEFAULT 'medium',
			due_date TIMESTAMP WITH TIME ZONE,
			completed_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON focus_sessions(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON focus_sessions(started_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_sessions_status ON focus_sessions(status)",
		"CREATE INDEX IF NOT EXISTS idx_sessions_user_status ON focus_sessions(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_stats_user_id ON user_stats(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_todos_user_id ON todos(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_todos_user_created ON todos(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_auth_sessions_user ON auth_sessions(user_id)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			log.Printf("Warning: failed to create index: %v", err)
		}
	}

	return nil
}

func (r *MigrationRunner) seedCategories(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO categories (name, color, icon, is_default) VALUES
			('Work',     '#3B82F6', 'briefcase', true),
			('Study',    '#8B5CF6', 'book',      true),
			('Reading',  '#F59E0B', 'book-open', true),
			('Exercise', '#EF4444', 'activity',  true),
			('Creative', '#EC4899', 'palette',   true),
			('Other',    '#6B7280', 'circle',    true)
		ON CONFLICT (name) DO NOTHING
	`)
	return err
}

func (r *MigrationRunner) seedAchievements(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO achievements (name, description, icon, badge_color, requirement, type, xp_reward) VALUES
			('First Focus',     'Complete your first focus session',          'play',   '#10B981', 1,     'sessions',   50),
			('Getting Started', 'Complete 10 focus sessions',                 'zap',    '#10B981', 10,    'sessions',   100),
			('Centurion',       'Complete 100 focus sessions',                'award',  '#F59E0B', 100,   'sessions',   500),
			('First Hour',      'Accumulate 60 minutes of focus time',        'clock',  '#3B82F6', 60,    'total_time', 50),
			('Deep Worker',     'Accumulate 1,000 minutes of focus time',     'brain',  '#3B82F6', 1000,  'total_time', 250),
			('Time Lord',       'Accumulate 10,000 minutes of focus time',    'crown',  '#F59E0B', 10000, 'total_time', 1000),
			('Streak Starter',  'Stay active 3 days in a row',                'flame',  '#EF4444', 3,     'streak',     75),
			('Week Warrior',    'Stay active 7 days in a row',                'fire',   '#EF4444', 7,     'streak',     200),
			('Unstoppable',     'Stay active 30 days in a row',               'rocket', '#F59E0B', 30,    'streak',     1000)
		ON CONFLICT (name) DO NOTHING
	`)
	return err
}
