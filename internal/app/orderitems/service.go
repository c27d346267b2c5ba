package orderitems

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/remote"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/order_item_repo"
)

type OrderItemNotFoundError struct {
	ID domain.OrderItemID
}

func (e *OrderItemNotFoundError) Error() string {
	return fmt.Sprintf("OrderItem with id: %s not found!", e.ID)
}

type OrderItemService interface {
	FindAll(ctx context.Context) ([]*dto.OrderItemDTO, error)
	FindByID(ctx context.Context, id domain.OrderItemID) (*dto.OrderItemDTO, error)
	Save(ctx context.Context, d *dto.OrderItemDTO) (*dto.OrderItemDTO, error)
	Update(ctx context.Context, d *dto.OrderItemDTO) (*dto.OrderItemDTO, error)
	DeleteByID(ctx context.Context, id domain.OrderItemID) error
}

type orderItemService struct {
	orderItemRepo order_item_repo.OrderItemRepository
	products      remote.ProductLookup
	orders        remote.OrderLookup
	enrich        remote.Enricher
	listPolicy    remote.ListPolicy
	logger        *zap.Logger
}

func NewOrderItemService(
	orderItemRepo order_item_repo.OrderItemRepository,
	products remote.ProductLookup,
	orders remote.OrderLookup,
	enrich remote.Enricher,
	listPolicy remote.ListPolicy,
	logger *zap.Logger,
) OrderItemService {
	if enrich == nil {
		enrich = remote.Sequential
	}
	if listPolicy == "" {
		listPolicy = remote.ListPolicyAbort
	}
	return &orderItemService{
		orderItemRepo: orderItemRepo,
		products:      products,
		orders:        orders,
		enrich:        enrich,
		listPolicy:    listPolicy,
		logger:        logger,
	}
}

func (s *orderItemService) enrichDTO(ctx context.Context, record *domain.OrderItem, d *dto.OrderItemDTO) error {
	return s.enrich(ctx,
		func(ctx context.Context) error {
			product, err := s.products.FetchProduct(ctx, record.ProductID)
			if err != nil {
				return err
			}
			d.Product = product
			return nil
		},
		func(ctx context.Context) error {
			order, err := s.orders.FetchOrder(ctx, record.OrderID)
			if err != nil {
				return err
			}
			d.Order = order
			return nil
		},
	)
}

func (s *orderItemService) FindAll(ctx context.Context) ([]*dto.OrderItemDTO, error) {
	items, err := s.orderItemRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all order items from repository", zap.Error(err))
		return nil, err
	}
	result := make([]*dto.OrderItemDTO, 0, len(items))
	for _, item := range items {
		d := toDTO(item)
		if err := s.enrichDTO(ctx, item, d); err != nil {
			if s.listPolicy == remote.ListPolicySkip {
				s.logger.Warn("Skipping order item: remote lookup failed",
					zap.String("order_item_id", item.ID().String()),
					zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("failed to enrich order item %s: %w", item.ID(), err)
		}
		result = append(result, d)
	}
	return result, nil
}

func (s *orderItemService) FindByID(ctx context.Context, id domain.OrderItemID) (*dto.OrderItemDTO, error) {
	item, err := s.orderItemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Order item not found", zap.String("order_item_id", id.String()))
			return nil, &OrderItemNotFoundError{ID: id}
		}
		s.logger.Error("Failed to get order item from repository", zap.String("order_item_id", id.String()), zap.Error(err))
		return nil, err
	}

	d := toDTO(item)
	if err := s.enrichDTO(ctx, item, d); err != nil {
		return nil, fmt.Errorf("failed to enrich order item %s: %w", id, err)
	}
	return d, nil
}

func (s *orderItemService) Save(ctx context.Context, d *dto.OrderItemDTO) (*dto.OrderItemDTO, error) {
	persisted, err := s.orderItemRepo.Save(ctx, toRecord(d))
	if err != nil {
		s.logger.Error("Failed to save order item", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Order item saved", zap.String("order_item_id", persisted.ID().String()))

	out := toDTO(persisted)
	out.Product = d.Product
	out.Order = d.Order
	return out, nil
}

func (s *orderItemService) Update(ctx context.Context, d *dto.OrderItemDTO) (*dto.OrderItemDTO, error) {
	return s.Save(ctx, d)
}

func (s *orderItemService) DeleteByID(ctx context.Context, id domain.OrderItemID) error {
	if err := s.orderItemRepo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("Failed to delete order item", zap.String("order_item_id", id.String()), zap.Error(err))
		return err
	}
	s.logger.Info("Order item deleted", zap.String("order_item_id", id.String()))
	return nil
}
