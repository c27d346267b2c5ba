package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserClientFetchesByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user_id": 42, "first_name": "Selim", "email": "selim@example.com"}`))
	}))
	defer srv.Close()

	lookup := NewUserClient(NewClient(srv.URL, time.Second, zap.NewNop()))
	user, err := lookup.FetchUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Equal(t, "Selim", user.FirstName)
}

func TestGetJSONReportsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such order", http.StatusNotFound)
	}))
	defer srv.Close()

	lookup := NewOrderClient(NewClient(srv.URL, time.Second, zap.NewNop()))
	order, err := lookup.FetchOrder(context.Background(), 7)
	require.Error(t, err)
	assert.Nil(t, order)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestGetJSONReportsUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	lookup := NewProductClient(NewClient(srv.URL, time.Second, zap.NewNop()))
	_, err := lookup.FetchProduct(context.Background(), 1)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Error(t, fetchErr.Unwrap())
}
