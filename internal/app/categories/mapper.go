package categories

import (
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

func toDTO(c *domain.Category) *dto.CategoryDTO {
	return &dto.CategoryDTO{
		CategoryID:    c.CategoryID,
		CategoryTitle: c.CategoryTitle,
		ImageURL:      c.ImageURL,
	}
}

func toRecord(d *dto.CategoryDTO) *domain.Category {
	return &domain.Category{
		CategoryID:    d.CategoryID,
		CategoryTitle: d.CategoryTitle,
		ImageURL:      d.ImageURL,
	}
}
