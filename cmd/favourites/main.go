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

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/app/favourites"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/config"
	http_favourites "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/handler/http/favourites"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/infrastructure/database"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/remote"
	postgres_favourite_repo "github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/favourite_repo/postgres"
)

func main() {
	cfg, err := config.LoadServiceConfig("FAVOURITES")
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
	appLogger.Info("Favourite Service starting...")

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

	userLookup := remote.NewUserClient(remote.NewClient(cfg.UserServiceURL, cfg.LookupTimeout, appLogger))
	productLookup := remote.NewProductClient(remote.NewClient(cfg.ProductServiceURL, cfg.LookupTimeout, appLogger))

	favouriteRepository := postgres_favourite_repo.NewFavouriteRepository(db, appLogger)
	favouriteService := favourites.NewFavouriteService(
		favouriteRepository,
		userLookup,
		productLookup,
		enrich,
		listPolicy,
		appLogger,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	http_favourites.RegisterRoutes(r, favouriteService, appLogger)

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
	appLogger.Info("Favourite Service started", zap.String("address", serverAddr))

	<-sigChan

	appLogger.Info("Shutting down Favourite Service...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Favourite Service graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("Favourite Service stopped.")
}
