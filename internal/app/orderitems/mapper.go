package orderitems

import (
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

// toDTO leaves Product and Order unset; the aggregator fills them from the
// owning services.
func toDTO(oi *domain.OrderItem) *dto.OrderItemDTO {
	return &dto.OrderItemDTO{
		OrderID:         oi.OrderID,
		ProductID:       oi.ProductID,
		OrderedQuantity: oi.OrderedQuantity,
	}
}

func toRecord(d *dto.OrderItemDTO) *domain.OrderItem {
	return &domain.OrderItem{
		OrderID:         d.OrderID,
		ProductID:       d.ProductID,
		OrderedQuantity: d.OrderedQuantity,
	}
}
