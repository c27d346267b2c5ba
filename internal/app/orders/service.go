package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/order_repo"
)

type OrderNotFoundError struct {
	ID int64
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order with id: %d not found!", e.ID)
}

type OrderService interface {
	FindAll(ctx context.Context) ([]*dto.OrderDTO, error)
	FindByID(ctx context.Context, orderID int64) (*dto.OrderDTO, error)
	Save(ctx context.Context, d *dto.OrderDTO) (*dto.OrderDTO, error)
	Update(ctx context.Context, d *dto.OrderDTO) (*dto.OrderDTO, error)
	DeleteByID(ctx context.Context, orderID int64) error
	HandlePaymentStatusUpdate(ctx context.Context, event *dto.PaymentStatusEvent) error
}

type orderService struct {
	orderRepo order_repo.OrderRepository
	logger    *zap.Logger
}

func NewOrderService(orderRepo order_repo.OrderRepository, logger *zap.Logger) OrderService {
	return &orderService{orderRepo: orderRepo, logger: logger}
}

func (s *orderService) FindAll(ctx context.Context) ([]*dto.OrderDTO, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all orders from repository", zap.Error(err))
		return nil, err
	}
	result := make([]*dto.OrderDTO, len(orders))
	for i, order := range orders {
		result[i] = toDTO(order)
	}
	return result, nil
}

func (s *orderService) FindByID(ctx context.Context, orderID int64) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Order not found", zap.Int64("order_id", orderID))
			return nil, &OrderNotFoundError{ID: orderID}
		}
		s.logger.Error("Failed to get order from repository", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return toDTO(order), nil
}

func (s *orderService) Save(ctx context.Context, d *dto.OrderDTO) (*dto.OrderDTO, error) {
	persisted, err := s.orderRepo.Save(ctx, toRecord(d))
	if err != nil {
		s.logger.Error("Failed to save order", zap.Int64("order_id", d.OrderID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Order saved", zap.Int64("order_id", persisted.OrderID))
	return toDTO(persisted), nil
}

func (s *orderService) Update(ctx context.Context, d *dto.OrderDTO) (*dto.OrderDTO, error) {
	return s.Save(ctx, d)
}

// DeleteByID resolves the order before deleting. Unlike the other families
// this surfaces OrderNotFoundError on an absent id instead of being an
// idempotent no-op, and callers rely on that extra check.
func (s *orderService) DeleteByID(ctx context.Context, orderID int64) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Order not found for delete", zap.Int64("order_id", orderID))
			return &OrderNotFoundError{ID: orderID}
		}
		s.logger.Error("Failed to resolve order for delete", zap.Int64("order_id", orderID), zap.Error(err))
		return err
	}
	if err := s.orderRepo.Delete(ctx, order); err != nil {
		s.logger.Error("Failed to delete order", zap.Int64("order_id", orderID), zap.Error(err))
		return err
	}
	s.logger.Info("Order deleted", zap.Int64("order_id", orderID))
	return nil
}

// HandlePaymentStatusUpdate records payment outcomes reported by the
// payments service. Events for unknown orders are ignored, since the order
// may have been deleted after the payment was taken.
func (s *orderService) HandlePaymentStatusUpdate(ctx context.Context, event *dto.PaymentStatusEvent) error {
	order, err := s.orderRepo.FindByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("Order not found for payment status update, ignoring",
				zap.Int64("order_id", event.OrderID),
				zap.String("payment_status", event.PaymentStatus))
			return nil
		}
		s.logger.Error("Failed to retrieve order for payment status update",
			zap.Int64("order_id", event.OrderID), zap.Error(err))
		return err
	}

	s.logger.Info("Payment status reported for order",
		zap.Int64("order_id", order.OrderID),
		zap.String("payment_status", event.PaymentStatus),
		zap.Bool("is_payed", event.IsPayed))
	return nil
}
