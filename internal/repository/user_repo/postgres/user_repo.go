package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/user_repo"
)

type pgUserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewUserRepository(db *sql.DB, l *zap.Logger) user_repo.UserRepository {
	return &pgUserRepository{db: db, logger: l}
}

const userColumns = `u.user_id, u.first_name, u.last_name, u.image_url, u.email, u.phone,
	c.credential_id, c.username, c.password, c.is_enabled`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.UserID, &user.FirstName, &user.LastName, &user.ImageURL, &user.Email, &user.Phone,
		&user.Credential.CredentialID, &user.Credential.Username, &user.Credential.Password, &user.Credential.IsEnabled,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *pgUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u JOIN credentials c ON c.user_id = u.user_id ORDER BY u.user_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query all users", zap.Error(err))
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.logger.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u JOIN credentials c ON c.user_id = u.user_id WHERE u.user_id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		r.logger.Error("Failed to get user by ID", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to get user by ID %d: %w", userID, err)
	}
	return user, nil
}

func (r *pgUserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction for user save", zap.Int64("user_id", user.UserID), zap.Error(err))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	persisted := *user

	if user.UserID == 0 {
		insertQuery := `INSERT INTO users (first_name, last_name, image_url, email, phone)
			VALUES ($1, $2, $3, $4, $5) RETURNING user_id`
		err = tx.QueryRowContext(ctx, insertQuery,
			user.FirstName, user.LastName, user.ImageURL, user.Email, user.Phone,
		).Scan(&persisted.UserID)
	} else {
		upsertQuery := `INSERT INTO users (user_id, first_name, last_name, image_url, email, phone)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id) DO UPDATE
			SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
				image_url = EXCLUDED.image_url, email = EXCLUDED.email, phone = EXCLUDED.phone
			RETURNING user_id`
		err = tx.QueryRowContext(ctx, upsertQuery,
			user.UserID, user.FirstName, user.LastName, user.ImageURL, user.Email, user.Phone,
		).Scan(&persisted.UserID)
	}
	if err != nil {
		r.logger.Error("Failed to save user row", zap.Int64("user_id", user.UserID), zap.Error(err))
		return nil, fmt.Errorf("tx failed to save user: %w", err)
	}

	credentialQuery := `INSERT INTO credentials (username, password, is_enabled, user_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username, password = EXCLUDED.password, is_enabled = EXCLUDED.is_enabled
		RETURNING credential_id`
	err = tx.QueryRowContext(ctx, credentialQuery,
		user.Credential.Username, user.Credential.Password, user.Credential.IsEnabled, persisted.UserID,
	).Scan(&persisted.Credential.CredentialID)
	if err != nil {
		r.logger.Error("Failed to save credential row", zap.Int64("user_id", persisted.UserID), zap.Error(err))
		return nil, fmt.Errorf("tx failed to save credential: %w", err)
	}

	if err = tx.Commit(); err != nil {
		r.logger.Error("Failed to commit user save transaction", zap.Int64("user_id", persisted.UserID), zap.Error(err))
		return nil, fmt.Errorf("failed to commit user save: %w", err)
	}
	r.logger.Debug("User saved", zap.Int64("user_id", persisted.UserID))
	return &persisted, nil
}

func (r *pgUserRepository) DeleteByID(ctx context.Context, userID int64) error {
	// credentials row goes with the user via ON DELETE CASCADE
	query := `DELETE FROM users WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.logger.Error("Failed to delete user", zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	r.logger.Debug("User deleted", zap.Int64("user_id", userID))
	return nil
}
