package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/payments"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/config"
	http_payments "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/handler/http/payments"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/infrastructure/database"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/infrastructure/kafka"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/remote"
	postgres_outbox_repo "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/outbox_repo/postgres"
	postgres_payment_repo "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/payment_repo/postgres"
)

func main() {
	cfg, err := config.LoadServiceConfig("PAYMENTS")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"

	appLogger, err := zapConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create zap logger: %v\n", err)
		os.Exit(1)
	}
	appLogger.Info("Payment Service starting...")

	listPolicy, err := remote.ParseListPolicy(cfg.ListPolicy)
	if err != nil {
		appLogger.Fatal("Invalid LOOKUP_LIST_POLICY", zap.Error(err))
	}

	db, err := database.ConnectWithRetry(cfg.DB, 10, 5*time.Second, appLogger)
	if err != nil {
		appLogger.Fatal("Could not connect to database. Exiting.", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("Error closing database connection", zap.Error(err))
		}
	}()

	if err := database.RunMigrations(cfg.DB, cfg.MigrationsPath, appLogger); err != nil {
		appLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	kafkaProducer := kafka.NewProducer(cfg.GetKafkaBrokers(), appLogger)
	defer func() {
		if err := kafkaProducer.Close(); err != nil {
			appLogger.Error("Error closing Kafka producer", zap.Error(err))
		}
	}()

	orderLookup := remote.NewOrderClient(remote.NewClient(cfg.OrderServiceURL, cfg.LookupTimeout, appLogger))

	paymentRepository := postgres_payment_repo.NewPaymentRepository(db, appLogger)
	outboxRepository := postgres_outbox_repo.NewOutboxRepository(db, appLogger)

	paymentService := payments.NewPaymentService(
		paymentRepository,
		outboxRepository,
		orderLookup,
		kafkaProducer,
		cfg.KafkaPaymentStatusTopic,
		listPolicy,
		appLogger,
	)

	go func() {
		ticker := time.NewTicker(cfg.OutboxPollInterval)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.OutboxPollTimeout)
			if err := paymentService.ProcessOutbox(ctx); err != nil {
				appLogger.Error("Error processing outbox", zap.Error(err))
			}
			cancel()
		}
	}()
	appLogger.Info("Transactional outbox sender started")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	http_payments.RegisterRoutes(r, paymentService, appLogger)

	serverAddr := ":" + cfg.HTTPPort
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()
	appLogger.Info("Payment Service started", zap.String("address", serverAddr))

	<-sigChan

	appLogger.Info("Shutting down Payment Service...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Payment Service graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("Payment Service stopped.")
}
