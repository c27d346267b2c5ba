package order_item_repo

import (
	"context"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
)

// OrderItemRepository is keyed by the (orderId, productId) pair. The tuple is
// treated as one opaque key; there is no partial-key lookup.
type OrderItemRepository interface {
	FindAll(ctx context.Context) ([]*domain.OrderItem, error)
	FindByID(ctx context.Context, id domain.OrderItemID) (*domain.OrderItem, error)
	Save(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	DeleteByID(ctx context.Context, id domain.OrderItemID) error
}
