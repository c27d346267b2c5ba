package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServiceConfigDefaults(t *testing.T) {
	cfg, err := LoadServiceConfig("USERS")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 5*time.Second, cfg.LookupTimeout)
	assert.False(t, cfg.LookupConcurrent)
	assert.Equal(t, "abort", cfg.ListPolicy)
	assert.Equal(t, "payment_status_updates", cfg.KafkaPaymentStatusTopic)
	assert.Equal(t, []string{"localhost:9092"}, cfg.GetKafkaBrokers())
}

func TestLoadServiceConfigPrefixedOverrides(t *testing.T) {
	t.Setenv("ORDERS_DB_HOST", "orders-db")
	t.Setenv("ORDERS_HTTP_PORT", "9001")
	t.Setenv("USERS_DB_HOST", "users-db")

	cfg, err := LoadServiceConfig("ORDERS")
	require.NoError(t, err)
	assert.Equal(t, "orders-db", cfg.DB.Host, "each service reads only its own prefix")
	assert.Equal(t, "9001", cfg.HTTPPort)
}

func TestLoadServiceConfigInvalidDuration(t *testing.T) {
	t.Setenv("OUTBOX_POLL_INTERVAL", "soon")

	_, err := LoadServiceConfig("PAYMENTS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTBOX_POLL_INTERVAL")
}

func TestLoadGatewayConfig(t *testing.T) {
	t.Setenv("GATEWAY_PORT", "8000")
	t.Setenv("PRODUCT_SERVICE_URL", "http://products:8082")

	cfg, err := LoadGatewayConfig()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.GatewayPort)
	assert.Equal(t, "http://products:8082", cfg.ProductServiceURL)
	assert.Equal(t, "http://localhost:8081", cfg.UserServiceURL)
}
