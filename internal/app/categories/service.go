package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/category_repo"
)

type CategoryNotFoundError struct {
	ID int64
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("Category with id: %d not found!", e.ID)
}

type CategoryService interface {
	FindAll(ctx context.Context) ([]*dto.CategoryDTO, error)
	FindByID(ctx context.Context, categoryID int64) (*dto.CategoryDTO, error)
	Save(ctx context.Context, d *dto.CategoryDTO) (*dto.CategoryDTO, error)
	Update(ctx context.Context, d *dto.CategoryDTO) (*dto.CategoryDTO, error)
	DeleteByID(ctx context.Context, categoryID int64) error
}

type categoryService struct {
	categoryRepo category_repo.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo category_repo.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *categoryService) FindAll(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all categories from repository", zap.Error(err))
		return nil, err
	}
	result := make([]*dto.CategoryDTO, len(categories))
	for i, category := range categories {
		result[i] = toDTO(category)
	}
	return result, nil
}

func (s *categoryService) FindByID(ctx context.Context, categoryID int64) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Category not found", zap.Int64("category_id", categoryID))
			return nil, &CategoryNotFoundError{ID: categoryID}
		}
		s.logger.Error("Failed to get category from repository", zap.Int64("category_id", categoryID), zap.Error(err))
		return nil, err
	}
	return toDTO(category), nil
}

func (s *categoryService) Save(ctx context.Context, d *dto.CategoryDTO) (*dto.CategoryDTO, error) {
	persisted, err := s.categoryRepo.Save(ctx, toRecord(d))
	if err != nil {
		s.logger.Error("Failed to save category", zap.Int64("category_id", d.CategoryID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Category saved", zap.Int64("category_id", persisted.CategoryID))
	return toDTO(persisted), nil
}

func (s *categoryService) Update(ctx context.Context, d *dto.CategoryDTO) (*dto.CategoryDTO, error) {
	return s.Save(ctx, d)
}

func (s *categoryService) DeleteByID(ctx context.Context, categoryID int64) error {
	if err := s.categoryRepo.DeleteByID(ctx, categoryID); err != nil {
		s.logger.Error("Failed to delete category", zap.Int64("category_id", categoryID), zap.Error(err))
		return err
	}
	s.logger.Info("Category deleted", zap.Int64("category_id", categoryID))
	return nil
}
