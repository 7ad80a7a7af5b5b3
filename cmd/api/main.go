package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/brewstation/backend/config"
	"github.com/brewstation/backend/internal/api"
	"github.com/brewstation/backend/internal/database"
	"github.com/brewstation/backend/internal/server"
	"github.com/brewstation/backend/internal/service"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "api").Logger()

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading configuration failed")
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, rate limiting and response caching disabled")
		redisClient = nil
	}

	s3cfg, err := config.NewS3Config(context.Background())
	if err != nil {
		logger.Warn().Err(err).Msg("object storage unavailable, export publishing disabled")
		s3cfg = nil
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	catalogService := service.NewCatalogService(db)
	settingsService := service.NewSettingsService(db)
	pricingService := service.NewPricingService(db, catalogService, settingsService)
	brewfatherService := service.NewBrewfatherService(db, settingsService, redisClient)
	notificationService := service.NewNotificationService(db)
	exportService := service.NewExportService(db, s3cfg)

	srv := server.NewServer(cfg, api.Dependencies{
		DB:            db,
		Redis:         redisClient,
		Auth:          authService,
		Pricing:       pricingService,
		Settings:      settingsService,
		Brewfather:    brewfatherService,
		Notifications: notificationService,
		Export:        exportService,
	})

	if err := srv.Start(cfg.ServerPort); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}
	logger.Info().Msg("server stopped")
}
