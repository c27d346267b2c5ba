package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/outbox_repo"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/payment_repo"
)

type pgPaymentRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPaymentRepository(db *sql.DB, l *zap.Logger) payment_repo.PaymentRepository {
	return &pgPaymentRepository{db: db, logger: l}
}

func (r *pgPaymentRepository) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	query := `SELECT payment_id, order_id, is_payed, payment_status FROM payments ORDER BY payment_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query all payments", zap.Error(err))
		return nil, fmt.Errorf("failed to get all payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		payment := &domain.Payment{}
		if err := rows.Scan(&payment.PaymentID, &payment.OrderID, &payment.IsPayed, &payment.PaymentStatus); err != nil {
			r.logger.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return payments, nil
}

func (r *pgPaymentRepository) FindByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	payment := &domain.Payment{}
	query := `SELECT payment_id, order_id, is_payed, payment_status FROM payments WHERE payment_id = $1`
	err := r.db.QueryRowContext(ctx, query, paymentID).
		Scan(&payment.PaymentID, &payment.OrderID, &payment.IsPayed, &payment.PaymentStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		r.logger.Error("Failed to get payment by ID", zap.Int64("payment_id", paymentID), zap.Error(err))
		return nil, fmt.Errorf("failed to get payment by ID %d: %w", paymentID, err)
	}
	return payment, nil
}

func (r *pgPaymentRepository) Save(ctx context.Context, payment *domain.Payment, msg *outbox_repo.OutboxMessage) (*domain.Payment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction for payment save", zap.Int64("payment_id", payment.PaymentID), zap.Error(err))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	persisted := *payment

	if payment.PaymentID == 0 {
		insertQuery := `INSERT INTO payments (order_id, is_payed, payment_status)
			VALUES ($1, $2, $3) RETURNING payment_id`
		err = tx.QueryRowContext(ctx, insertQuery,
			payment.OrderID, payment.IsPayed, payment.PaymentStatus,
		).Scan(&persisted.PaymentID)
	} else {
		upsertQuery := `INSERT INTO payments (payment_id, order_id, is_payed, payment_status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (payment_id) DO UPDATE
			SET order_id = EXCLUDED.order_id, is_payed = EXCLUDED.is_payed, payment_status = EXCLUDED.payment_status
			RETURNING payment_id`
		err = tx.QueryRowContext(ctx, upsertQuery,
			payment.PaymentID, payment.OrderID, payment.IsPayed, payment.PaymentStatus,
		).Scan(&persisted.PaymentID)
	}
	if err != nil {
		r.logger.Error("Failed to save payment row", zap.Int64("payment_id", payment.PaymentID), zap.Error(err))
		return nil, fmt.Errorf("tx failed to save payment: %w", err)
	}

	outboxQuery := `INSERT INTO outbox_messages (id, topic, payload, status, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, outboxQuery, msg.ID, msg.Topic, msg.Payload, msg.Status, msg.CreatedAt); err != nil {
		r.logger.Error("Failed to insert outbox message for payment", zap.Int64("payment_id", persisted.PaymentID), zap.Error(err))
		return nil, fmt.Errorf("tx failed to create outbox message: %w", err)
	}

	if err = tx.Commit(); err != nil {
		r.logger.Error("Failed to commit payment save transaction", zap.Int64("payment_id", persisted.PaymentID), zap.Error(err))
		return nil, fmt.Errorf("failed to commit payment save: %w", err)
	}
	r.logger.Debug("Payment saved with outbox message",
		zap.Int64("payment_id", persisted.PaymentID),
		zap.String("message_id", msg.ID))
	return &persisted, nil
}

func (r *pgPaymentRepository) DeleteByID(ctx context.Context, paymentID int64) error {
	query := `DELETE FROM payments WHERE payment_id = $1`
	if _, err := r.db.ExecContext(ctx, query, paymentID); err != nil {
		r.logger.Error("Failed to delete payment", zap.Int64("payment_id", paymentID), zap.Error(err))
		return fmt.Errorf("failed to delete payment %d: %w", paymentID, err)
	}
	return nil
}
