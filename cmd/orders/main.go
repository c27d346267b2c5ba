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

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/carts"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/orders"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/config"
	http_carts "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/handler/http/carts"
	http_orders "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/handler/http/orders"
	kafka_handler "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/handler/kafka"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/infrastructure/database"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/infrastructure/kafka"
	postgres_cart_repo "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/cart_repo/postgres"
	postgres_order_repo "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/order_repo/postgres"
)

func main() {
	cfg, err := config.LoadServiceConfig("ORDERS")
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
	appLogger.Info("Order Service starting...")

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

	cartRepository := postgres_cart_repo.NewCartRepository(db, appLogger)
	orderRepository := postgres_order_repo.NewOrderRepository(db, appLogger)

	cartService := carts.NewCartService(cartRepository, appLogger)
	orderService := orders.NewOrderService(orderRepository, appLogger)

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	paymentStatusConsumer := kafka_handler.NewPaymentStatusConsumer(orderService, appLogger)
	go kafka.StartConsumer(
		consumerCtx,
		cfg.GetKafkaBrokers(),
		cfg.KafkaPaymentStatusTopic,
		cfg.KafkaConsumerGroup,
		paymentStatusConsumer.HandleMessage,
		appLogger,
	)
	appLogger.Info("Kafka payment status consumer started")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	http_carts.RegisterRoutes(r, cartService, appLogger)
	http_orders.RegisterRoutes(r, orderService, appLogger)

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
	appLogger.Info("Order Service started", zap.String("address", serverAddr))

	<-sigChan

	appLogger.Info("Shutting down Order Service...")
	consumerCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Order Service graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("Order Service stopped.")
}
