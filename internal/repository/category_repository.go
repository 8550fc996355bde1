package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
)

type categoryRepository struct {
	db DBTX
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db DBTX) domain.CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories ordered by their label
func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var rows []models.Category
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, type FROM categories ORDER BY type`); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = toDomainCategory(&rows[i])
	}
	return categories, nil
}

func (r *categoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	query := r.db.Rebind(`SELECT COUNT(*) FROM categories WHERE id = ?`)
	if err := r.db.GetContext(ctx, &n, query, id); err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *categoryRepository) GetByType(ctx context.Context, categoryType string) (*domain.Category, error) {
	var row models.Category
	query := r.db.Rebind(`SELECT id, type FROM categories WHERE type = ?`)
	if err := r.db.GetContext(ctx, &row, query, categoryType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category %q: %w", categoryType, err)
	}
	return toDomainCategory(&row), nil
}

// Create persists a new category
func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if c == nil {
		return fmt.Errorf("cannot save nil category")
	}
	var id int64
	query := r.db.Rebind(`INSERT INTO categories (type) VALUES (?) RETURNING id`)
	if err := r.db.GetContext(ctx, &id, query, c.Type); err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	c.ID = id
	return nil
}

func toDomainCategory(m *models.Category) *domain.Category {
	return &domain.Category{
		ID:   m.ID,
		Type: m.Type,
	}
}
