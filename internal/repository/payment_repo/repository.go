package payment_repo

import (
	"context"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/outbox_repo"
)

// PaymentRepository persists payments; Save also records the status event
// outbox row in the same transaction, so the event cannot be written without
// the payment nor the payment without the event.
type PaymentRepository interface {
	FindAll(ctx context.Context) ([]*domain.Payment, error)
	FindByID(ctx context.Context, paymentID int64) (*domain.Payment, error)
	Save(ctx context.Context, payment *domain.Payment, msg *outbox_repo.OutboxMessage) (*domain.Payment, error)
	DeleteByID(ctx context.Context, paymentID int64) error
}
