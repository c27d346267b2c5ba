package products

import (
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

func toDTO(p *domain.Product) *dto.ProductDTO {
	return &dto.ProductDTO{
		ProductID:    p.ProductID,
		ProductTitle: p.ProductTitle,
		ImageURL:     p.ImageURL,
		SKU:          p.SKU,
		PriceUnit:    p.PriceUnit,
		Quantity:     p.Quantity,
		Category: &dto.CategoryDTO{
			CategoryID:    p.Category.CategoryID,
			CategoryTitle: p.Category.CategoryTitle,
			ImageURL:      p.Category.ImageURL,
		},
	}
}

// toRecord keeps only the category reference; the category's own fields are
// read back from the categories table, never written through a product.
func toRecord(d *dto.ProductDTO) *domain.Product {
	product := &domain.Product{
		ProductID:    d.ProductID,
		ProductTitle: d.ProductTitle,
		ImageURL:     d.ImageURL,
		SKU:          d.SKU,
		PriceUnit:    d.PriceUnit,
		Quantity:     d.Quantity,
	}
	if d.Category != nil {
		product.Category = domain.Category{CategoryID: d.Category.CategoryID}
	}
	return product
}
