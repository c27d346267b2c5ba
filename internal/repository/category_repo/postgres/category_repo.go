package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/category_repo"
)

type pgCategoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *sql.DB, l *zap.Logger) category_repo.CategoryRepository {
	return &pgCategoryRepository{db: db, logger: l}
}

func (r *pgCategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT category_id, category_title, image_url FROM categories ORDER BY category_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query all categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.CategoryID, &category.CategoryTitle, &category.ImageURL); err != nil {
			r.logger.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return categories, nil
}

func (r *pgCategoryRepository) FindByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	category := &domain.Category{}
	query := `SELECT category_id, category_title, image_url FROM categories WHERE category_id = $1`
	err := r.db.QueryRowContext(ctx, query, categoryID).
		Scan(&category.CategoryID, &category.CategoryTitle, &category.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		r.logger.Error("Failed to get category by ID", zap.Int64("category_id", categoryID), zap.Error(err))
		return nil, fmt.Errorf("failed to get category by ID %d: %w", categoryID, err)
	}
	return category, nil
}

func (r *pgCategoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	persisted := *category
	var err error
	if category.CategoryID == 0 {
		query := `INSERT INTO categories (category_title, image_url) VALUES ($1, $2) RETURNING category_id`
		err = r.db.QueryRowContext(ctx, query, category.CategoryTitle, category.ImageURL).Scan(&persisted.CategoryID)
	} else {
		query := `INSERT INTO categories (category_id, category_title, image_url) VALUES ($1, $2, $3)
			ON CONFLICT (category_id) DO UPDATE
			SET category_title = EXCLUDED.category_title, image_url = EXCLUDED.image_url
			RETURNING category_id`
		err = r.db.QueryRowContext(ctx, query, category.CategoryID, category.CategoryTitle, category.ImageURL).Scan(&persisted.CategoryID)
	}
	if err != nil {
		r.logger.Error("Failed to save category", zap.Int64("category_id", category.CategoryID), zap.Error(err))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	r.logger.Debug("Category saved", zap.Int64("category_id", persisted.CategoryID))
	return &persisted, nil
}

func (r *pgCategoryRepository) DeleteByID(ctx context.Context, categoryID int64) error {
	query := `DELETE FROM categories WHERE category_id = $1`
	if _, err := r.db.ExecContext(ctx, query, categoryID); err != nil {
		r.logger.Error("Failed to delete category", zap.Int64("category_id", categoryID), zap.Error(err))
		return fmt.Errorf("failed to delete category %d: %w", categoryID, err)
	}
	return nil
}
