package category_repo

import (
	"context"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	Save(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteByID(ctx context.Context, categoryID int64) error
}
