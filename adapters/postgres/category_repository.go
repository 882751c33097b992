package postgres

import (
	"context"

	"focusflow/models"
	"focusflow/ports"

	"github.com/jmoiron/sqlx"
)

// CategoryRepositoryImpl implements CategoryRepository for PostgreSQL
type CategoryRepositoryImpl struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db *sqlx.DB) ports.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// ListCategories returns all categories ordered by name
func (r *CategoryRepositoryImpl) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, `
		SELECT id, name, color, icon, is_default, created_at
		FROM categories
		ORDER BY name
	`)
	return categories, err
}
