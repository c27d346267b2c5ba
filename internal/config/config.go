package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/infrastructure/database"
)

// ServiceConfig holds the settings of a single domain service. Database keys
// are prefixed per service (USERS_DB_HOST, ORDERS_DB_HOST, ...), the rest are
// shared across the deployment.
type ServiceConfig struct {
	HTTPPort       string
	DB             database.DBConfig
	MigrationsPath string

	UserServiceURL    string
	ProductServiceURL string
	OrderServiceURL   string

	LookupTimeout    time.Duration
	LookupConcurrent bool
	ListPolicy       string

	KafkaURL                string
	KafkaPaymentStatusTopic string
	KafkaConsumerGroup      string

	OutboxPollInterval time.Duration
	OutboxPollTimeout  time.Duration
}

// LoadServiceConfig reads the configuration for the service identified by
// prefix, e.g. "USERS" or "ORDER_ITEMS". A .env file in the working directory
// is honoured when present.
func LoadServiceConfig(prefix string) (*ServiceConfig, error) {
	_ = godotenv.Load()

	cfg := &ServiceConfig{}

	cfg.HTTPPort = getEnvOrDefault(prefix+"_HTTP_PORT", "8080")

	cfg.DB.Host = getEnvOrDefault(prefix+"_DB_HOST", "localhost")
	cfg.DB.Port = getEnvOrDefault(prefix+"_DB_PORT", "5432")
	cfg.DB.User = getEnvOrDefault(prefix+"_DB_USER", "postgres")
	cfg.DB.Password = getEnvOrDefault(prefix+"_DB_PASSWORD", "postgres")
	cfg.DB.DBName = getEnvOrDefault(prefix+"_DB_NAME", "ecommerce_db")
	cfg.DB.SSLMode = getEnvOrDefault(prefix+"_DB_SSLMODE", "disable")

	cfg.MigrationsPath = getEnvOrDefault(prefix+"_MIGRATIONS_PATH", "migrations")

	cfg.UserServiceURL = getEnvOrDefault("USER_SERVICE_URL", "http://localhost:8081")
	cfg.ProductServiceURL = getEnvOrDefault("PRODUCT_SERVICE_URL", "http://localhost:8082")
	cfg.OrderServiceURL = getEnvOrDefault("ORDER_SERVICE_URL", "http://localhost:8083")

	lookupTimeoutStr := getEnvOrDefault("LOOKUP_TIMEOUT", "5s")
	lookupTimeout, err := time.ParseDuration(lookupTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOOKUP_TIMEOUT: %w", err)
	}
	cfg.LookupTimeout = lookupTimeout

	cfg.LookupConcurrent = getEnvOrDefault("LOOKUP_CONCURRENT", "false") == "true"
	cfg.ListPolicy = getEnvOrDefault("LOOKUP_LIST_POLICY", "abort")

	cfg.KafkaURL = getEnvOrDefault("KAFKA_BROKER_URL", "localhost:9092")
	cfg.KafkaPaymentStatusTopic = getEnvOrDefault("KAFKA_PAYMENT_STATUS_TOPIC", "payment_status_updates")
	cfg.KafkaConsumerGroup = getEnvOrDefault("KAFKA_CONSUMER_GROUP", "order-service-group")

	outboxPollIntervalStr := getEnvOrDefault("OUTBOX_POLL_INTERVAL", "5s")
	interval, err := time.ParseDuration(outboxPollIntervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_POLL_INTERVAL: %w", err)
	}
	cfg.OutboxPollInterval = interval

	outboxPollTimeoutStr := getEnvOrDefault("OUTBOX_POLL_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(outboxPollTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid OUTBOX_POLL_TIMEOUT: %w", err)
	}
	cfg.OutboxPollTimeout = timeout

	return cfg, nil
}

func (c *ServiceConfig) GetKafkaBrokers() []string {
	return []string{c.KafkaURL}
}

type GatewayConfig struct {
	GatewayPort string

	UserServiceURL      string
	ProductServiceURL   string
	OrderServiceURL     string
	PaymentServiceURL   string
	FavouriteServiceURL string
	OrderItemServiceURL string
}

func LoadGatewayConfig() (*GatewayConfig, error) {
	_ = godotenv.Load()

	cfg := &GatewayConfig{}

	cfg.GatewayPort = getEnvOrDefault("GATEWAY_PORT", "8080")

	cfg.UserServiceURL = getEnvOrDefault("USER_SERVICE_URL", "http://localhost:8081")
	cfg.ProductServiceURL = getEnvOrDefault("PRODUCT_SERVICE_URL", "http://localhost:8082")
	cfg.OrderServiceURL = getEnvOrDefault("ORDER_SERVICE_URL", "http://localhost:8083")
	cfg.PaymentServiceURL = getEnvOrDefault("PAYMENT_SERVICE_URL", "http://localhost:8084")
	cfg.FavouriteServiceURL = getEnvOrDefault("FAVOURITE_SERVICE_URL", "http://localhost:8085")
	cfg.OrderItemServiceURL = getEnvOrDefault("ORDER_ITEM_SERVICE_URL", "http://localhost:8086")

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
