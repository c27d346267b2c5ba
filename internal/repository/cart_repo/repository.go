package cart_repo

import (
	"context"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
)

type CartRepository interface {
	FindAll(ctx context.Context) ([]*domain.Cart, error)
	FindByID(ctx context.Context, cartID int64) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	DeleteByID(ctx context.Context, cartID int64) error
}
