package payments

import (
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

// toDTO leaves Order unset; the aggregator fills it from the orders service.
func toDTO(p *domain.Payment) *dto.PaymentDTO {
	return &dto.PaymentDTO{
		PaymentID:     p.PaymentID,
		OrderID:       p.OrderID,
		IsPayed:       p.IsPayed,
		PaymentStatus: p.PaymentStatus,
	}
}

// toRecord drops the order substructure; only the order id is stored. A
// caller that supplies the id solely inside the substructure is still
// honoured.
func toRecord(d *dto.PaymentDTO) *domain.Payment {
	orderID := d.OrderID
	if orderID == 0 && d.Order != nil {
		orderID = d.Order.OrderID
	}
	return &domain.Payment{
		PaymentID:     d.PaymentID,
		OrderID:       orderID,
		IsPayed:       d.IsPayed,
		PaymentStatus: d.PaymentStatus,
	}
}
