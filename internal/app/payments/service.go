package payments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/infrastructure/kafka"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/remote"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/outbox_repo"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/payment_repo"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/util"
)

type PaymentNotFoundError struct {
	ID int64
}

func (e *PaymentNotFoundError) Error() string {
	return fmt.Sprintf("Payment with id: %d not found!", e.ID)
}

type PaymentService interface {
	FindAll(ctx context.Context) ([]*dto.PaymentDTO, error)
	FindByID(ctx context.Context, paymentID int64) (*dto.PaymentDTO, error)
	Save(ctx context.Context, d *dto.PaymentDTO) (*dto.PaymentDTO, error)
	Update(ctx context.Context, d *dto.PaymentDTO) (*dto.PaymentDTO, error)
	DeleteByID(ctx context.Context, paymentID int64) error
	ProcessOutbox(ctx context.Context) error
}

type paymentService struct {
	paymentRepo   payment_repo.PaymentRepository
	outboxRepo    outbox_repo.OutboxRepository
	orders        remote.OrderLookup
	kafkaProducer kafka.Producer
	statusTopic   string
	listPolicy    remote.ListPolicy
	logger        *zap.Logger
}

func NewPaymentService(
	paymentRepo payment_repo.PaymentRepository,
	outboxRepo outbox_repo.OutboxRepository,
	orders remote.OrderLookup,
	kafkaProducer kafka.Producer,
	statusTopic string,
	listPolicy remote.ListPolicy,
	logger *zap.Logger,
) PaymentService {
	if listPolicy == "" {
		listPolicy = remote.ListPolicyAbort
	}
	return &paymentService{
		paymentRepo:   paymentRepo,
		outboxRepo:    outboxRepo,
		orders:        orders,
		kafkaProducer: kafkaProducer,
		statusTopic:   statusTopic,
		listPolicy:    listPolicy,
		logger:        logger,
	}
}

func (s *paymentService) FindAll(ctx context.Context) ([]*dto.PaymentDTO, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all payments from repository", zap.Error(err))
		return nil, err
	}
	result := make([]*dto.PaymentDTO, 0, len(payments))
	for _, payment := range payments {
		d := toDTO(payment)
		order, err := s.orders.FetchOrder(ctx, payment.OrderID)
		if err != nil {
			if s.listPolicy == remote.ListPolicySkip {
				s.logger.Warn("Skipping payment: order lookup failed",
					zap.Int64("payment_id", payment.PaymentID),
					zap.Int64("order_id", payment.OrderID),
					zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("failed to fetch order %d for payment %d: %w", payment.OrderID, payment.PaymentID, err)
		}
		d.Order = order
		result = append(result, d)
	}
	return result, nil
}

func (s *paymentService) FindByID(ctx context.Context, paymentID int64) (*dto.PaymentDTO, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Payment not found", zap.Int64("payment_id", paymentID))
			return nil, &PaymentNotFoundError{ID: paymentID}
		}
		s.logger.Error("Failed to get payment from repository", zap.Int64("payment_id", paymentID), zap.Error(err))
		return nil, err
	}

	d := toDTO(payment)
	order, err := s.orders.FetchOrder(ctx, payment.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %d for payment %d: %w", payment.OrderID, paymentID, err)
	}
	d.Order = order
	return d, nil
}

// Save persists the payment and queues the status event atomically; the
// caller-supplied order substructure is echoed back without a second fetch.
func (s *paymentService) Save(ctx context.Context, d *dto.PaymentDTO) (*dto.PaymentDTO, error) {
	record := toRecord(d)

	event := dto.PaymentStatusEvent{
		OrderID:       record.OrderID,
		PaymentStatus: string(record.PaymentStatus),
		IsPayed:       record.IsPayed,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal payment status event", zap.Int64("order_id", record.OrderID), zap.Error(err))
		return nil, fmt.Errorf("failed to marshal payment status event: %w", err)
	}
	msg := &outbox_repo.OutboxMessage{
		ID:        util.GenerateUUID(),
		Topic:     s.statusTopic,
		Payload:   payload,
		Status:    outbox_repo.StatusPending,
		CreatedAt: time.Now(),
	}

	persisted, err := s.paymentRepo.Save(ctx, record, msg)
	if err != nil {
		s.logger.Error("Failed to save payment", zap.Int64("payment_id", d.PaymentID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Payment saved and status event added to outbox",
		zap.Int64("payment_id", persisted.PaymentID),
		zap.String("payment_status", string(persisted.PaymentStatus)))

	out := toDTO(persisted)
	out.Order = d.Order
	return out, nil
}

func (s *paymentService) Update(ctx context.Context, d *dto.PaymentDTO) (*dto.PaymentDTO, error) {
	return s.Save(ctx, d)
}

func (s *paymentService) DeleteByID(ctx context.Context, paymentID int64) error {
	if err := s.paymentRepo.DeleteByID(ctx, paymentID); err != nil {
		s.logger.Error("Failed to delete payment", zap.Int64("payment_id", paymentID), zap.Error(err))
		return err
	}
	s.logger.Info("Payment deleted", zap.Int64("payment_id", paymentID))
	return nil
}

// ProcessOutbox publishes pending status events to Kafka. Failures leave the
// message pending for the next poll.
func (s *paymentService) ProcessOutbox(ctx context.Context) error {
	messages, err := s.outboxRepo.GetUnsentMessages(ctx)
	if err != nil {
		s.logger.Error("Failed to get unsent outbox messages", zap.Error(err))
		return fmt.Errorf("failed to get unsent outbox messages: %w", err)
	}
	if len(messages) == 0 {
		return nil
	}

	s.logger.Info("Processing unsent outbox messages", zap.Int("count", len(messages)))
	for _, msg := range messages {
		if err := s.kafkaProducer.Produce(ctx, msg.Topic, msg.Payload); err != nil {
			s.logger.Error("Failed to produce outbox message to Kafka",
				zap.String("message_id", msg.ID),
				zap.String("topic", msg.Topic),
				zap.Error(err))
			continue
		}
		if err := s.outboxRepo.MarkMessageSent(ctx, msg.ID); err != nil {
			s.logger.Error("Failed to mark outbox message as sent",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}
	return nil
}
