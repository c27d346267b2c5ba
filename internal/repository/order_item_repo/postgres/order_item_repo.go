package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/order_item_repo"
)

type pgOrderItemRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewOrderItemRepository(db *sql.DB, l *zap.Logger) order_item_repo.OrderItemRepository {
	return &pgOrderItemRepository{db: db, logger: l}
}

func (r *pgOrderItemRepository) FindAll(ctx context.Context) ([]*domain.OrderItem, error) {
	query := `SELECT order_id, product_id, ordered_quantity FROM order_items ORDER BY order_id, product_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query all order items", zap.Error(err))
		return nil, fmt.Errorf("failed to get all order items: %w", err)
	}
	defer rows.Close()

	var items []*domain.OrderItem
	for rows.Next() {
		item := &domain.OrderItem{}
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.OrderedQuantity); err != nil {
			r.logger.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return items, nil
}

func (r *pgOrderItemRepository) FindByID(ctx context.Context, id domain.OrderItemID) (*domain.OrderItem, error) {
	item := &domain.OrderItem{}
	query := `SELECT order_id, product_id, ordered_quantity FROM order_items WHERE order_id = $1 AND product_id = $2`
	err := r.db.QueryRowContext(ctx, query, id.OrderID, id.ProductID).
		Scan(&item.OrderID, &item.ProductID, &item.OrderedQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		r.logger.Error("Failed to get order item by ID", zap.String("order_item_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get order item by ID %s: %w", id, err)
	}
	return item, nil
}

func (r *pgOrderItemRepository) Save(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	// a second save of the same key pair overwrites the quantity
	persisted := *item
	query := `INSERT INTO order_items (order_id, product_id, ordered_quantity) VALUES ($1, $2, $3)
		ON CONFLICT (order_id, product_id) DO UPDATE SET ordered_quantity = EXCLUDED.ordered_quantity`
	if _, err := r.db.ExecContext(ctx, query, item.OrderID, item.ProductID, item.OrderedQuantity); err != nil {
		r.logger.Error("Failed to save order item", zap.String("order_item_id", item.ID().String()), zap.Error(err))
		return nil, fmt.Errorf("failed to save order item: %w", err)
	}
	r.logger.Debug("Order item saved", zap.String("order_item_id", item.ID().String()))
	return &persisted, nil
}

func (r *pgOrderItemRepository) DeleteByID(ctx context.Context, id domain.OrderItemID) error {
	query := `DELETE FROM order_items WHERE order_id = $1 AND product_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id.OrderID, id.ProductID); err != nil {
		r.logger.Error("Failed to delete order item", zap.String("order_item_id", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete order item %s: %w", id, err)
	}
	return nil
}
