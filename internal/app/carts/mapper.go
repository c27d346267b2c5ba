package carts

import (
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

func toDTO(c *domain.Cart) *dto.CartDTO {
	return &dto.CartDTO{CartID: c.CartID, UserID: c.UserID}
}

func toRecord(d *dto.CartDTO) *domain.Cart {
	return &domain.Cart{CartID: d.CartID, UserID: d.UserID}
}
