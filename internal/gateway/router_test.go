package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/config"
)

func TestRouterForwardsToOwningService(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"product_id": 7}`))
	}))
	defer upstream.Close()

	cfg := &config.GatewayConfig{
		UserServiceURL:      upstream.URL,
		ProductServiceURL:   upstream.URL,
		OrderServiceURL:     upstream.URL,
		PaymentServiceURL:   upstream.URL,
		FavouriteServiceURL: upstream.URL,
		OrderItemServiceURL: upstream.URL,
	}
	router, err := NewRouter(cfg, zap.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/products/7", gotPath, "the resource path reaches the upstream unchanged")
	assert.Contains(t, rec.Body.String(), `"product_id": 7`)
}

func TestRouterAnswersServiceUnavailableWhenUpstreamIsDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	cfg := &config.GatewayConfig{
		UserServiceURL:      upstream.URL,
		ProductServiceURL:   upstream.URL,
		OrderServiceURL:     upstream.URL,
		PaymentServiceURL:   upstream.URL,
		FavouriteServiceURL: upstream.URL,
		OrderItemServiceURL: upstream.URL,
	}
	router, err := NewRouter(cfg, zap.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/1", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Service Unavailable")
}

func TestRouterRejectsBadUpstreamURL(t *testing.T) {
	cfg := &config.GatewayConfig{UserServiceURL: "://broken"}
	_, err := NewRouter(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestHealthz(t *testing.T) {
	cfg := &config.GatewayConfig{}
	router, err := NewRouter(cfg, zap.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
