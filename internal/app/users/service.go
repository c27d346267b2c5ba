package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/user_repo"
)

// UserNotFoundError reports an absent user; the credential shares the user's
// lifetime so there is no separate credential lookup surface.
type UserNotFoundError struct {
	ID int64
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User with id: %d not found!", e.ID)
}

type UserService interface {
	FindAll(ctx context.Context) ([]*dto.UserDTO, error)
	FindByID(ctx context.Context, userID int64) (*dto.UserDTO, error)
	Save(ctx context.Context, d *dto.UserDTO) (*dto.UserDTO, error)
	Update(ctx context.Context, d *dto.UserDTO) (*dto.UserDTO, error)
	DeleteByID(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo user_repo.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo user_repo.UserRepository, logger *zap.Logger) UserService {
	return &userService{userRepo: userRepo, logger: logger}
}

func (s *userService) FindAll(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all users from repository", zap.Error(err))
		return nil, err
	}
	result := make([]*dto.UserDTO, len(users))
	for i, user := range users {
		result[i] = toDTO(user)
	}
	return result, nil
}

func (s *userService) FindByID(ctx context.Context, userID int64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("User not found", zap.Int64("user_id", userID))
			return nil, &UserNotFoundError{ID: userID}
		}
		s.logger.Error("Failed to get user from repository", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return toDTO(user), nil
}

func (s *userService) Save(ctx context.Context, d *dto.UserDTO) (*dto.UserDTO, error) {
	persisted, err := s.userRepo.Save(ctx, toRecord(d))
	if err != nil {
		s.logger.Error("Failed to save user", zap.Int64("user_id", d.UserID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("User saved", zap.Int64("user_id", persisted.UserID))
	return toDTO(persisted), nil
}

func (s *userService) Update(ctx context.Context, d *dto.UserDTO) (*dto.UserDTO, error) {
	return s.Save(ctx, d)
}

func (s *userService) DeleteByID(ctx context.Context, userID int64) error {
	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		s.logger.Error("Failed to delete user", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	s.logger.Info("User deleted", zap.Int64("user_id", userID))
	return nil
}
