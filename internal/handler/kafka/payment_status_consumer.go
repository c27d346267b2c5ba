package kafka

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/orders"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

type PaymentStatusConsumer struct {
	orderService orders.OrderService
	logger       *zap.Logger
}

func NewPaymentStatusConsumer(s orders.OrderService, l *zap.Logger) *PaymentStatusConsumer {
	return &PaymentStatusConsumer{orderService: s, logger: l}
}

func (c *PaymentStatusConsumer) HandleMessage(ctx context.Context, message []byte) error {
	var event dto.PaymentStatusEvent
	if err := json.Unmarshal(message, &event); err != nil {
		c.logger.Error("Error unmarshalling Kafka message", zap.Error(err), zap.String("raw_message", string(message)))
		return nil
	}

	c.logger.Info("Received payment status update",
		zap.Int64("order_id", event.OrderID),
		zap.String("payment_status", event.PaymentStatus))

	err := c.orderService.HandlePaymentStatusUpdate(ctx, &event)
	if err != nil {
		c.logger.Error("Error processing payment status update for order",
			zap.Int64("order_id", event.OrderID),
			zap.Error(err))
		return err
	}
	return nil
}
