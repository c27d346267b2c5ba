package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/favourite_repo"
)

type pgFavouriteRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewFavouriteRepository(db *sql.DB, l *zap.Logger) favourite_repo.FavouriteRepository {
	return &pgFavouriteRepository{db: db, logger: l}
}

func (r *pgFavouriteRepository) FindAll(ctx context.Context) ([]*domain.Favourite, error) {
	query := `SELECT user_id, product_id, like_date FROM favourites ORDER BY user_id, product_id, like_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query all favourites", zap.Error(err))
		return nil, fmt.Errorf("failed to get all favourites: %w", err)
	}
	defer rows.Close()

	var favourites []*domain.Favourite
	for rows.Next() {
		favourite := &domain.Favourite{}
		if err := rows.Scan(&favourite.UserID, &favourite.ProductID, &favourite.LikeDate); err != nil {
			r.logger.Error("Failed to scan favourite row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan favourite row: %w", err)
		}
		favourites = append(favourites, favourite)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return favourites, nil
}

func (r *pgFavouriteRepository) FindByID(ctx context.Context, id domain.FavouriteID) (*domain.Favourite, error) {
	favourite := &domain.Favourite{}
	query := `SELECT user_id, product_id, like_date FROM favourites WHERE user_id = $1 AND product_id = $2 AND like_date = $3`
	err := r.db.QueryRowContext(ctx, query, id.UserID, id.ProductID, id.LikeDate).
		Scan(&favourite.UserID, &favourite.ProductID, &favourite.LikeDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		r.logger.Error("Failed to get favourite by ID", zap.String("favourite_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get favourite by ID %s: %w", id, err)
	}
	return favourite, nil
}

func (r *pgFavouriteRepository) Save(ctx context.Context, favourite *domain.Favourite) (*domain.Favourite, error) {
	// the record is all key, so a conflicting save is a no-op
	persisted := *favourite
	query := `INSERT INTO favourites (user_id, product_id, like_date) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id, like_date) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, favourite.UserID, favourite.ProductID, favourite.LikeDate); err != nil {
		r.logger.Error("Failed to save favourite", zap.String("favourite_id", favourite.ID().String()), zap.Error(err))
		return nil, fmt.Errorf("failed to save favourite: %w", err)
	}
	r.logger.Debug("Favourite saved", zap.String("favourite_id", favourite.ID().String()))
	return &persisted, nil
}

func (r *pgFavouriteRepository) DeleteByID(ctx context.Context, id domain.FavouriteID) error {
	query := `DELETE FROM favourites WHERE user_id = $1 AND product_id = $2 AND like_date = $3`
	if _, err := r.db.ExecContext(ctx, query, id.UserID, id.ProductID, id.LikeDate); err != nil {
		r.logger.Error("Failed to delete favourite", zap.String("favourite_id", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete favourite %s: %w", id, err)
	}
	return nil
}
