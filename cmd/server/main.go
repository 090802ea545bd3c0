package main

import (
	"github.com/360Pawan/360Tube/internal/app"
	"github.com/360Pawan/360Tube/pkg/cache"
	"github.com/360Pawan/360Tube/pkg/config"
	"github.com/360Pawan/360Tube/pkg/database"
	"github.com/360Pawan/360Tube/pkg/logger"
	"github.com/360Pawan/360Tube/pkg/queue"
	"github.com/360Pawan/360Tube/pkg/s3"
)

// @title           360Tube API
// @version         1.0
// @description     Video sharing platform backend: videos, comments, tweets, playlists, subscriptions and likes.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.AccessTokenSecret == "change-me-access" || cfg.RefreshTokenSecret == "change-me-refresh" {
		panic("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// Mail delivery is best-effort; the server runs without the broker.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, verification mail disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
