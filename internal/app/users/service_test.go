package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (r *stubUserRepo) FindAll(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, userID int64) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (r *stubUserRepo) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.UserID == 0 {
		user.UserID = r.nextID
		r.nextID++
	}
	r.users[user.UserID] = user
	return user, nil
}

func (r *stubUserRepo) DeleteByID(ctx context.Context, userID int64) error {
	delete(r.users, userID)
	return nil
}

func TestUserFindByIDNotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zap.NewNop())

	_, err := svc.FindByID(context.Background(), 7)
	require.Error(t, err)

	var notFound *UserNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "User with id: 7 not found!", notFound.Error())
}

func TestUserSaveAssignsIDAndKeepsCredential(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zap.NewNop())

	saved, err := svc.Save(context.Background(), &dto.UserDTO{
		FirstName: "Selim",
		LastName:  "Horri",
		Email:     "selim@example.com",
		Credential: &dto.CredentialDTO{
			Username:  "selimhorri",
			Password:  "secret",
			IsEnabled: true,
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.UserID)
	require.NotNil(t, saved.Credential)
	assert.Equal(t, "selimhorri", saved.Credential.Username)
	assert.True(t, saved.Credential.IsEnabled)

	found, err := svc.FindByID(context.Background(), saved.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Selim", found.FirstName)
	require.NotNil(t, found.Credential)
	assert.Equal(t, "selimhorri", found.Credential.Username)
}

func TestUserUpdateOverwritesExisting(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zap.NewNop())

	saved, err := svc.Save(context.Background(), &dto.UserDTO{FirstName: "Selim", Email: "a@example.com"})
	require.NoError(t, err)

	saved.Email = "b@example.com"
	updated, err := svc.Update(context.Background(), saved)
	require.NoError(t, err)
	assert.Equal(t, saved.UserID, updated.UserID)

	found, err := svc.FindByID(context.Background(), saved.UserID)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", found.Email)
}

func TestUserDeleteThenFindNotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zap.NewNop())

	saved, err := svc.Save(context.Background(), &dto.UserDTO{FirstName: "Selim"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(context.Background(), saved.UserID))

	_, err = svc.FindByID(context.Background(), saved.UserID)
	var notFound *UserNotFoundError
	assert.True(t, errors.As(err, &notFound))
}
