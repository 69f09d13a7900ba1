package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"business_directory/internal/config"
	"business_directory/internal/logging"
	"business_directory/internal/repository"
	"business_directory/internal/server"
	"business_directory/internal/service"
	"business_directory/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, &cfg.DB)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := config.RunMigrations(ctx, dbPool); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTTTL)

	// --- Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	businessRepo := repository.NewBusinessRepository(dbPool)
	photoRepo := repository.NewPhotoRepository(dbPool)
	reviewRepo := repository.NewReviewRepository(dbPool)

	// --- Services ---
	policy := service.NewAccessPolicy(userRepo)
	services := server.Services{
		Users:      service.NewUserService(userRepo, policy, jwtUtil),
		Businesses: service.NewBusinessService(businessRepo, photoRepo, reviewRepo, policy),
		Photos:     service.NewPhotoService(photoRepo, policy),
		Reviews:    service.NewReviewService(reviewRepo, policy),
	}

	router := server.NewRouter(services, jwtUtil, server.Options{
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
		DB:          dbPool,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			stop()
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exiting")
}
