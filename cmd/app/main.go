package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hdcode14/otpbs-exploreease/internal/cache"
	"github.com/hdcode14/otpbs-exploreease/internal/catalog"
	"github.com/hdcode14/otpbs-exploreease/internal/config"
	"github.com/hdcode14/otpbs-exploreease/internal/db"
	"github.com/hdcode14/otpbs-exploreease/internal/logger"
	"github.com/hdcode14/otpbs-exploreease/internal/server"
	"github.com/hdcode14/otpbs-exploreease/internal/user"
)

// @title ExploreEase API
// @version 1.0
// @description Travel package booking service: browse, wishlist, book, pay, and manage refunds.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	logger.Info("Starting ExploreEase application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	ctx := context.Background()

	if err := catalog.Seed(ctx, catalog.NewRepository(database)); err != nil {
		logger.Fatalf("Failed to seed catalog: %v", err)
	}
	if err := user.SeedAdmin(ctx, user.NewRepository(database), cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatalf("Failed to seed admin user: %v", err)
	}

	catalogCache := cache.New(cfg.RedisAddr, cfg.CacheTTL)
	defer catalogCache.Close()

	srv := server.New(database, cfg, catalogCache)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
