package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/order_repo"
)

type pgOrderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewOrderRepository(db *sql.DB, l *zap.Logger) order_repo.OrderRepository {
	return &pgOrderRepository{db: db, logger: l}
}

const orderColumns = `o.order_id, o.order_date, o.order_desc, o.order_fee, c.cart_id, c.user_id`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	order := &domain.Order{}
	err := row.Scan(
		&order.OrderID, &order.OrderDate, &order.OrderDesc, &order.OrderFee,
		&order.Cart.CartID, &order.Cart.UserID,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *pgOrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN carts c ON c.cart_id = o.cart_id ORDER BY o.order_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query all orders", zap.Error(err))
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.logger.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return orders, nil
}

func (r *pgOrderRepository) FindByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN carts c ON c.cart_id = o.cart_id WHERE o.order_id = $1`
	order, err := scanOrder(r.db.QueryRowContext(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		r.logger.Error("Failed to get order by ID", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, fmt.Errorf("failed to get order by ID %d: %w", orderID, err)
	}
	return order, nil
}

func (r *pgOrderRepository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var orderID int64
	var err error
	if order.OrderID == 0 {
		query := `INSERT INTO orders (order_date, order_desc, order_fee, cart_id)
			VALUES ($1, $2, $3, $4) RETURNING order_id`
		err = r.db.QueryRowContext(ctx, query,
			order.OrderDate, order.OrderDesc, order.OrderFee, order.Cart.CartID,
		).Scan(&orderID)
	} else {
		query := `INSERT INTO orders (order_id, order_date, order_desc, order_fee, cart_id)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (order_id) DO UPDATE
			SET order_date = EXCLUDED.order_date, order_desc = EXCLUDED.order_desc,
				order_fee = EXCLUDED.order_fee, cart_id = EXCLUDED.cart_id
			RETURNING order_id`
		err = r.db.QueryRowContext(ctx, query,
			order.OrderID, order.OrderDate, order.OrderDesc, order.OrderFee, order.Cart.CartID,
		).Scan(&orderID)
	}
	if err != nil {
		r.logger.Error("Failed to save order", zap.Int64("order_id", order.OrderID), zap.Error(err))
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	r.logger.Debug("Order saved", zap.Int64("order_id", orderID))
	return r.FindByID(ctx, orderID)
}

func (r *pgOrderRepository) Delete(ctx context.Context, order *domain.Order) error {
	query := `DELETE FROM orders WHERE order_id = $1`
	if _, err := r.db.ExecContext(ctx, query, order.OrderID); err != nil {
		r.logger.Error("Failed to delete order", zap.Int64("order_id", order.OrderID), zap.Error(err))
		return fmt.Errorf("failed to delete order %d: %w", order.OrderID, err)
	}
	r.logger.Debug("Order deleted", zap.Int64("order_id", order.OrderID))
	return nil
}
