package carts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/cart_repo"
)

type CartNotFoundError struct {
	ID int64
}

func (e *CartNotFoundError) Error() string {
	return fmt.Sprintf("Cart with id: %d not found!", e.ID)
}

type CartService interface {
	FindAll(ctx context.Context) ([]*dto.CartDTO, error)
	FindByID(ctx context.Context, cartID int64) (*dto.CartDTO, error)
	Save(ctx context.Context, d *dto.CartDTO) (*dto.CartDTO, error)
	Update(ctx context.Context, d *dto.CartDTO) (*dto.CartDTO, error)
	DeleteByID(ctx context.Context, cartID int64) error
}

type cartService struct {
	cartRepo cart_repo.CartRepository
	logger   *zap.Logger
}

func NewCartService(cartRepo cart_repo.CartRepository, logger *zap.Logger) CartService {
	return &cartService{cartRepo: cartRepo, logger: logger}
}

func (s *cartService) FindAll(ctx context.Context) ([]*dto.CartDTO, error) {
	carts, err := s.cartRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all carts from repository", zap.Error(err))
		return nil, err
	}
	result := make([]*dto.CartDTO, len(carts))
	for i, cart := range carts {
		result[i] = toDTO(cart)
	}
	return result, nil
}

func (s *cartService) FindByID(ctx context.Context, cartID int64) (*dto.CartDTO, error) {
	cart, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Cart not found", zap.Int64("cart_id", cartID))
			return nil, &CartNotFoundError{ID: cartID}
		}
		s.logger.Error("Failed to get cart from repository", zap.Int64("cart_id", cartID), zap.Error(err))
		return nil, err
	}
	return toDTO(cart), nil
}

func (s *cartService) Save(ctx context.Context, d *dto.CartDTO) (*dto.CartDTO, error) {
	persisted, err := s.cartRepo.Save(ctx, toRecord(d))
	if err != nil {
		s.logger.Error("Failed to save cart", zap.Int64("cart_id", d.CartID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Cart saved", zap.Int64("cart_id", persisted.CartID))
	return toDTO(persisted), nil
}

func (s *cartService) Update(ctx context.Context, d *dto.CartDTO) (*dto.CartDTO, error) {
	return s.Save(ctx, d)
}

func (s *cartService) DeleteByID(ctx context.Context, cartID int64) error {
	if err := s.cartRepo.DeleteByID(ctx, cartID); err != nil {
		s.logger.Error("Failed to delete cart", zap.Int64("cart_id", cartID), zap.Error(err))
		return err
	}
	s.logger.Info("Cart deleted", zap.Int64("cart_id", cartID))
	return nil
}
