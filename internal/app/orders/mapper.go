package orders

import (
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

func toDTO(o *domain.Order) *dto.OrderDTO {
	return &dto.OrderDTO{
		OrderID:   o.OrderID,
		OrderDate: o.OrderDate,
		OrderDesc: o.OrderDesc,
		OrderFee:  o.OrderFee,
		Cart: &dto.CartDTO{
			CartID: o.Cart.CartID,
			UserID: o.Cart.UserID,
		},
	}
}

func toRecord(d *dto.OrderDTO) *domain.Order {
	order := &domain.Order{
		OrderID:   d.OrderID,
		OrderDate: d.OrderDate,
		OrderDesc: d.OrderDesc,
		OrderFee:  d.OrderFee,
	}
	if d.Cart != nil {
		order.Cart = domain.Cart{CartID: d.Cart.CartID}
	}
	return order
}
