package product_repo

import (
	"context"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
)

// ProductRepository returns products with their category joined inline;
// Save persists only the category reference, never the category fields.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, productID int64) (*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteByID(ctx context.Context, productID int64) error
}
