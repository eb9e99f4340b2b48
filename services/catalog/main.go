package main

import (
	"cinewave/pkg/cache"
	"cinewave/pkg/config"
	"cinewave/pkg/database"
	"cinewave/pkg/logger"
	"cinewave/pkg/queue"
	"cinewave/pkg/s3"
	"cinewave/services/catalog/internal/app"
	"cinewave/services/catalog/internal/model"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Cinewave Catalog Service API
// @version         1.0
// @description     Films, series, seasons, episodes, media uploads and the review workflow

// @host      localhost:8002
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

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := db.AutoMigrate(
		&model.ContentModel{},
		&model.FilmModel{},
		&model.SerieModel{},
		&model.SeasonModel{},
		&model.EpisodeModel{},
	); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		// review events degrade to logs when the broker is down
		log.Warn("RabbitMQ unavailable, events disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, redisClient, queueClient)
}
