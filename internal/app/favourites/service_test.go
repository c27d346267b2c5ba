package favourites

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/remote"
)

type stubFavouriteRepo struct {
	records map[domain.FavouriteID]*domain.Favourite
}

func newStubFavouriteRepo() *stubFavouriteRepo {
	return &stubFavouriteRepo{records: map[domain.FavouriteID]*domain.Favourite{}}
}

func (r *stubFavouriteRepo) FindAll(ctx context.Context) ([]*domain.Favourite, error) {
	out := make([]*domain.Favourite, 0, len(r.records))
	for _, f := range r.records {
		out = append(out, f)
	}
	return out, nil
}

func (r *stubFavouriteRepo) FindByID(ctx context.Context, id domain.FavouriteID) (*domain.Favourite, error) {
	f, ok := r.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return f, nil
}

func (r *stubFavouriteRepo) Save(ctx context.Context, favourite *domain.Favourite) (*domain.Favourite, error) {
	r.records[favourite.ID()] = favourite
	return favourite, nil
}

func (r *stubFavouriteRepo) DeleteByID(ctx context.Context, id domain.FavouriteID) error {
	delete(r.records, id)
	return nil
}

type stubUserLookup struct {
	users map[int64]*dto.UserDTO
}

func (l *stubUserLookup) FetchUser(ctx context.Context, userID int64) (*dto.UserDTO, error) {
	u, ok := l.users[userID]
	if !ok {
		return nil, &remote.FetchError{URL: "/users", StatusCode: 404}
	}
	return u, nil
}

type stubProductLookup struct {
	products map[int64]*dto.ProductDTO
}

func (l *stubProductLookup) FetchProduct(ctx context.Context, productID int64) (*dto.ProductDTO, error) {
	p, ok := l.products[productID]
	if !ok {
		return nil, &remote.FetchError{URL: "/products", StatusCode: 404}
	}
	return p, nil
}

func newTestService(repo *stubFavouriteRepo, users *stubUserLookup, products *stubProductLookup, enrich remote.Enricher, policy remote.ListPolicy) FavouriteService {
	return NewFavouriteService(repo, users, products, enrich, policy, zap.NewNop())
}

func TestFavouriteFindByIDEnrichesBothSides(t *testing.T) {
	repo := newStubFavouriteRepo()
	likeDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.records[domain.FavouriteID{UserID: 1, ProductID: 2, LikeDate: likeDate}] = &domain.Favourite{
		UserID: 1, ProductID: 2, LikeDate: likeDate,
	}
	users := &stubUserLookup{users: map[int64]*dto.UserDTO{1: {UserID: 1, FirstName: "Selim"}}}
	products := &stubProductLookup{products: map[int64]*dto.ProductDTO{2: {ProductID: 2, ProductTitle: "asus"}}}
	svc := newTestService(repo, users, products, nil, "")

	d, err := svc.FindByID(context.Background(), domain.FavouriteID{UserID: 1, ProductID: 2, LikeDate: likeDate})
	require.NoError(t, err)
	require.NotNil(t, d.User)
	require.NotNil(t, d.Product)
	assert.Equal(t, "Selim", d.User.FirstName)
	assert.Equal(t, "asus", d.Product.ProductTitle)
	assert.True(t, likeDate.Equal(d.LikeDate))
}

func TestFavouriteFindByIDNotFoundMessage(t *testing.T) {
	svc := newTestService(newStubFavouriteRepo(), &stubUserLookup{}, &stubProductLookup{}, nil, "")

	likeDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := svc.FindByID(context.Background(), domain.FavouriteID{UserID: 3, ProductID: 4, LikeDate: likeDate})
	require.Error(t, err)

	var notFound *FavouriteNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t,
		"Favourite with id: userId=3, productId=4, likeDate=2025-06-01T12:00:00Z not found!",
		notFound.Error())
}

func TestFavouriteFindByIDLookupFailureIsNotNotFound(t *testing.T) {
	repo := newStubFavouriteRepo()
	likeDate := time.Now().UTC()
	repo.records[domain.FavouriteID{UserID: 1, ProductID: 2, LikeDate: likeDate}] = &domain.Favourite{
		UserID: 1, ProductID: 2, LikeDate: likeDate,
	}
	svc := newTestService(repo, &stubUserLookup{}, &stubProductLookup{}, nil, "")

	_, err := svc.FindByID(context.Background(), domain.FavouriteID{UserID: 1, ProductID: 2, LikeDate: likeDate})
	require.Error(t, err)

	var notFound *FavouriteNotFoundError
	assert.False(t, errors.As(err, &notFound), "a failed lookup is a fetch failure, not record absence")
}

func TestFavouriteSaveEchoesSubstructures(t *testing.T) {
	svc := newTestService(newStubFavouriteRepo(), &stubUserLookup{}, &stubProductLookup{}, nil, "")

	user := &dto.UserDTO{UserID: 1, FirstName: "Selim"}
	product := &dto.ProductDTO{ProductID: 2, ProductTitle: "asus"}
	saved, err := svc.Save(context.Background(), &dto.FavouriteDTO{
		UserID:    1,
		ProductID: 2,
		LikeDate:  time.Now(),
		User:      user,
		Product:   product,
	})
	require.NoError(t, err)
	assert.Equal(t, user, saved.User, "save echoes the caller's user, it does not re-fetch")
	assert.Equal(t, product, saved.Product)
}

func TestFavouriteSameProductDifferentLikeDateKeepsBoth(t *testing.T) {
	repo := newStubFavouriteRepo()
	users := &stubUserLookup{users: map[int64]*dto.UserDTO{1: {UserID: 1}}}
	products := &stubProductLookup{products: map[int64]*dto.ProductDTO{2: {ProductID: 2}}}
	svc := newTestService(repo, users, products, nil, "")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, likeDate := range []time.Time{base, base.Add(time.Minute)} {
		_, err := svc.Save(context.Background(), &dto.FavouriteDTO{UserID: 1, ProductID: 2, LikeDate: likeDate})
		require.NoError(t, err)
	}

	all, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2, "the like timestamp is part of the identity")
}

func TestFavouriteFindAllSkipPolicy(t *testing.T) {
	repo := newStubFavouriteRepo()
	t1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	repo.records[domain.FavouriteID{UserID: 1, ProductID: 2, LikeDate: t1}] = &domain.Favourite{UserID: 1, ProductID: 2, LikeDate: t1}
	repo.records[domain.FavouriteID{UserID: 9, ProductID: 2, LikeDate: t2}] = &domain.Favourite{UserID: 9, ProductID: 2, LikeDate: t2}

	// user 9 is not resolvable
	users := &stubUserLookup{users: map[int64]*dto.UserDTO{1: {UserID: 1}}}
	products := &stubProductLookup{products: map[int64]*dto.ProductDTO{2: {ProductID: 2}}}
	svc := newTestService(repo, users, products, nil, remote.ListPolicySkip)

	all, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(1), all[0].UserID)
}

func TestFavouriteFindAllAbortPolicy(t *testing.T) {
	repo := newStubFavouriteRepo()
	t1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.records[domain.FavouriteID{UserID: 9, ProductID: 2, LikeDate: t1}] = &domain.Favourite{UserID: 9, ProductID: 2, LikeDate: t1}
	svc := newTestService(repo, &stubUserLookup{}, &stubProductLookup{}, nil, remote.ListPolicyAbort)

	_, err := svc.FindAll(context.Background())
	assert.Error(t, err)
}

func TestFavouriteConcurrentEnrichment(t *testing.T) {
	repo := newStubFavouriteRepo()
	likeDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.records[domain.FavouriteID{UserID: 1, ProductID: 2, LikeDate: likeDate}] = &domain.Favourite{
		UserID: 1, ProductID: 2, LikeDate: likeDate,
	}
	users := &stubUserLookup{users: map[int64]*dto.UserDTO{1: {UserID: 1, FirstName: "Selim"}}}
	products := &stubProductLookup{products: map[int64]*dto.ProductDTO{2: {ProductID: 2, ProductTitle: "asus"}}}
	svc := newTestService(repo, users, products, remote.Concurrent, "")

	d, err := svc.FindByID(context.Background(), domain.FavouriteID{UserID: 1, ProductID: 2, LikeDate: likeDate})
	require.NoError(t, err)
	require.NotNil(t, d.User)
	require.NotNil(t, d.Product)
	assert.Equal(t, "Selim", d.User.FirstName)
	assert.Equal(t, "asus", d.Product.ProductTitle)
}

func TestFavouriteDeleteByIDIsIdempotent(t *testing.T) {
	svc := newTestService(newStubFavouriteRepo(), &stubUserLookup{}, &stubProductLookup{}, nil, "")

	err := svc.DeleteByID(context.Background(), domain.FavouriteID{UserID: 1, ProductID: 2, LikeDate: time.Now()})
	assert.NoError(t, err, "deleting an absent favourite is a no-op")
}
