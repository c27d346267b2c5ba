package favourites

import (
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

// toDTO leaves User and Product unset; the aggregator fills them from the
// owning services.
func toDTO(f *domain.Favourite) *dto.FavouriteDTO {
	return &dto.FavouriteDTO{
		UserID:    f.UserID,
		ProductID: f.ProductID,
		LikeDate:  f.LikeDate,
	}
}

// toRecord drops the foreign substructures and keeps the key fields.
func toRecord(d *dto.FavouriteDTO) *domain.Favourite {
	return &domain.Favourite{
		UserID:    d.UserID,
		ProductID: d.ProductID,
		LikeDate:  d.LikeDate,
	}
}
