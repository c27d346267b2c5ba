package order_repo

import (
	"context"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
)

// OrderRepository returns orders with their cart joined inline. There is
// deliberately no DeleteByID: the order service resolves the record first
// and hands it to Delete, so a missing order never reaches the delete
// primitive.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]*domain.Order, error)
	FindByID(ctx context.Context, orderID int64) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, order *domain.Order) error
}
