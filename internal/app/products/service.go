package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/product_repo"
)

type ProductNotFoundError struct {
	ID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with id: %d not found!", e.ID)
}

// ProductService serves products with their category embedded inline. The
// category lives in the same store, so reads need no remote lookup.
type ProductService interface {
	FindAll(ctx context.Context) ([]*dto.ProductDTO, error)
	FindByID(ctx context.Context, productID int64) (*dto.ProductDTO, error)
	Save(ctx context.Context, d *dto.ProductDTO) (*dto.ProductDTO, error)
	Update(ctx context.Context, d *dto.ProductDTO) (*dto.ProductDTO, error)
	DeleteByID(ctx context.Context, productID int64) error
}

type productService struct {
	productRepo product_repo.ProductRepository
	logger      *zap.Logger
}

func NewProductService(productRepo product_repo.ProductRepository, logger *zap.Logger) ProductService {
	return &productService{productRepo: productRepo, logger: logger}
}

func (s *productService) FindAll(ctx context.Context) ([]*dto.ProductDTO, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all products from repository", zap.Error(err))
		return nil, err
	}
	result := make([]*dto.ProductDTO, len(products))
	for i, product := range products {
		result[i] = toDTO(product)
	}
	return result, nil
}

func (s *productService) FindByID(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Product not found", zap.Int64("product_id", productID))
			return nil, &ProductNotFoundError{ID: productID}
		}
		s.logger.Error("Failed to get product from repository", zap.Int64("product_id", productID), zap.Error(err))
		return nil, err
	}
	return toDTO(product), nil
}

func (s *productService) Save(ctx context.Context, d *dto.ProductDTO) (*dto.ProductDTO, error) {
	persisted, err := s.productRepo.Save(ctx, toRecord(d))
	if err != nil {
		s.logger.Error("Failed to save product", zap.Int64("product_id", d.ProductID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Product saved", zap.Int64("product_id", persisted.ProductID))
	return toDTO(persisted), nil
}

func (s *productService) Update(ctx context.Context, d *dto.ProductDTO) (*dto.ProductDTO, error) {
	return s.Save(ctx, d)
}

func (s *productService) DeleteByID(ctx context.Context, productID int64) error {
	if err := s.productRepo.DeleteByID(ctx, productID); err != nil {
		s.logger.Error("Failed to delete product", zap.Int64("product_id", productID), zap.Error(err))
		return err
	}
	s.logger.Info("Product deleted", zap.Int64("product_id", productID))
	return nil
}
