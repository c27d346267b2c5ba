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

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/orderitems"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/config"
	http_orderitems "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/handler/http/orderitems"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/infrastructure/database"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/remote"
	postgres_order_item_repo "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/order_item_repo/postgres"
)

func main() {
	cfg, err := config.LoadServiceConfig("ORDER_ITEMS")
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
	appLogger.Info("Order Item Service starting...")

	listPolicy, err := remote.ParseListPolicy(cfg.ListPolicy)
	if err != nil {
		appLogger.Fatal("Invalid LOOKUP_LIST_POLICY", zap.Error(err))
	}

	var enrich remote.Enricher = remote.Sequential
	if cfg.LookupConcurrent {
		enrich = remote.Concurrent
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

	productLookup := remote.NewProductClient(remote.NewClient(cfg.ProductServiceURL, cfg.LookupTimeout, appLogger))
	orderLookup := remote.NewOrderClient(remote.NewClient(cfg.OrderServiceURL, cfg.LookupTimeout, appLogger))

	orderItemRepository := postgres_order_item_repo.NewOrderItemRepository(db, appLogger)
	orderItemService := orderitems.NewOrderItemService(
		orderItemRepository,
		productLookup,
		orderLookup,
		enrich,
		listPolicy,
		appLogger,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	http_orderitems.RegisterRoutes(r, orderItemService, appLogger)

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
	appLogger.Info("Order Item Service started", zap.String("address", serverAddr))

	<-sigChan

	appLogger.Info("Shutting down Order Item Service...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Order Item Service graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("Order Item Service stopped.")
}
