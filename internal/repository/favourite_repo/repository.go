package favourite_repo

import (
	"context"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
)

// FavouriteRepository is keyed by the (userId, productId, likeDate) triple.
// Because the like timestamp is part of the key, saving the same user/product
// pair at a different moment creates a new record.
type FavouriteRepository interface {
	FindAll(ctx context.Context) ([]*domain.Favourite, error)
	FindByID(ctx context.Context, id domain.FavouriteID) (*domain.Favourite, error)
	Save(ctx context.Context, favourite *domain.Favourite) (*domain.Favourite, error)
	DeleteByID(ctx context.Context, id domain.FavouriteID) error
}
