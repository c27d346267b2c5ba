package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/cart_repo"
)

type pgCartRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewCartRepository(db *sql.DB, l *zap.Logger) cart_repo.CartRepository {
	return &pgCartRepository{db: db, logger: l}
}

func (r *pgCartRepository) FindAll(ctx context.Context) ([]*domain.Cart, error) {
	query := `SELECT cart_id, user_id FROM carts ORDER BY cart_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query all carts", zap.Error(err))
		return nil, fmt.Errorf("failed to get all carts: %w", err)
	}
	defer rows.Close()

	var carts []*domain.Cart
	for rows.Next() {
		cart := &domain.Cart{}
		if err := rows.Scan(&cart.CartID, &cart.UserID); err != nil {
			r.logger.Error("Failed to scan cart row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan cart row: %w", err)
		}
		carts = append(carts, cart)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return carts, nil
}

func (r *pgCartRepository) FindByID(ctx context.Context, cartID int64) (*domain.Cart, error) {
	cart := &domain.Cart{}
	query := `SELECT cart_id, user_id FROM carts WHERE cart_id = $1`
	err := r.db.QueryRowContext(ctx, query, cartID).Scan(&cart.CartID, &cart.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		r.logger.Error("Failed to get cart by ID", zap.Int64("cart_id", cartID), zap.Error(err))
		return nil, fmt.Errorf("failed to get cart by ID %d: %w", cartID, err)
	}
	return cart, nil
}

func (r *pgCartRepository) Save(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	persisted := *cart
	var err error
	if cart.CartID == 0 {
		query := `INSERT INTO carts (user_id) VALUES ($1) RETURNING cart_id`
		err = r.db.QueryRowContext(ctx, query, cart.UserID).Scan(&persisted.CartID)
	} else {
		query := `INSERT INTO carts (cart_id, user_id) VALUES ($1, $2)
			ON CONFLICT (cart_id) DO UPDATE SET user_id = EXCLUDED.user_id
			RETURNING cart_id`
		err = r.db.QueryRowContext(ctx, query, cart.CartID, cart.UserID).Scan(&persisted.CartID)
	}
	if err != nil {
		r.logger.Error("Failed to save cart", zap.Int64("cart_id", cart.CartID), zap.Error(err))
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	r.logger.Debug("Cart saved", zap.Int64("cart_id", persisted.CartID))
	return &persisted, nil
}

func (r *pgCartRepository) DeleteByID(ctx context.Context, cartID int64) error {
	query := `DELETE FROM carts WHERE cart_id = $1`
	if _, err := r.db.ExecContext(ctx, query, cartID); err != nil {
		r.logger.Error("Failed to delete cart", zap.Int64("cart_id", cartID), zap.Error(err))
		return fmt.Errorf("failed to delete cart %d: %w", cartID, err)
	}
	return nil
}
