package favourites

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

type stubFavouriteService struct {
	lastID domain.FavouriteID
}

func (s *stubFavouriteService) FindAll(ctx context.Context) ([]*dto.FavouriteDTO, error) {
	return nil, nil
}

func (s *stubFavouriteService) FindByID(ctx context.Context, id domain.FavouriteID) (*dto.FavouriteDTO, error) {
	s.lastID = id
	return &dto.FavouriteDTO{UserID: id.UserID, ProductID: id.ProductID, LikeDate: id.LikeDate}, nil
}

func (s *stubFavouriteService) Save(ctx context.Context, d *dto.FavouriteDTO) (*dto.FavouriteDTO, error) {
	return d, nil
}

func (s *stubFavouriteService) Update(ctx context.Context, d *dto.FavouriteDTO) (*dto.FavouriteDTO, error) {
	return d, nil
}

func (s *stubFavouriteService) DeleteByID(ctx context.Context, id domain.FavouriteID) error {
	s.lastID = id
	return nil
}

func TestFindByIDParsesCompositeKeyFromPath(t *testing.T) {
	svc := &stubFavouriteService{}
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())

	likeDate := time.Date(2025, 6, 1, 12, 30, 45, 123456789, time.UTC)
	path := fmt.Sprintf("/favourites/1/2/%s", url.PathEscape(likeDate.Format(time.RFC3339Nano)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), svc.lastID.UserID)
	assert.Equal(t, int64(2), svc.lastID.ProductID)
	assert.True(t, likeDate.Equal(svc.lastID.LikeDate))
}

func TestFindByIDRejectsMalformedLikeDate(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, &stubFavouriteService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favourites/1/2/yesterday", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
