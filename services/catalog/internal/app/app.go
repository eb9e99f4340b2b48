package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinewave/pkg/config"
	"cinewave/pkg/jwt"
	"cinewave/pkg/logger"
	"cinewave/pkg/middleware"
	"cinewave/pkg/queue"
	"cinewave/pkg/s3"
	catalogHTTP "cinewave/services/catalog/internal/controller/http"
	"cinewave/services/catalog/internal/repo/persistent"
	"cinewave/services/catalog/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "cinewave/services/catalog/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	contentRepo := persistent.NewContentRepository(db)
	catalogUseCase := usecase.NewCatalogUseCase(contentRepo, cfg, redisClient, queueClient, log)

	contentHandler := catalogHTTP.NewContentHandler(catalogUseCase)
	adminHandler := catalogHTTP.NewAdminHandler(catalogUseCase)
	uploadHandler := catalogHTTP.NewUploadHandler(s3Client)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		// Browsing is public; a token only widens visibility to own pending content.
		public := api.Group("")
		public.Use(middleware.OptionalAuthMiddleware(jwtService))
		public.Use(middleware.RateLimitMiddleware(redisClient, 300, time.Minute))
		{
			public.GET("/contents", contentHandler.ListContents)
			public.GET("/contents/:id", contentHandler.GetContent)
		}

		creator := api.Group("/creator")
		creator.Use(middleware.AuthMiddleware(jwtService))
		creator.Use(middleware.RequireRoles("CREATOR", "ADMIN"))
		creator.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
		{
			creator.POST("/contents", contentHandler.CreateContent)
			creator.GET("/contents", contentHandler.ListMyContents)
			creator.PUT("/contents/:id", contentHandler.UpdateContent)
			creator.DELETE("/contents/:id", contentHandler.DeleteContent)

			creator.POST("/contents/:id/seasons", contentHandler.AddSeason)
			creator.PUT("/seasons/:id", contentHandler.UpdateSeason)
			creator.DELETE("/seasons/:id", contentHandler.DeleteSeason)
			creator.POST("/seasons/:id/episodes", contentHandler.AddEpisode)
			creator.PUT("/seasons/:id/episodes/:episodeId", contentHandler.UpdateEpisode)
			creator.DELETE("/episodes/:id", contentHandler.DeleteEpisode)

			creator.POST("/uploads/:kind", uploadHandler.Upload)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(jwtService))
		admin.Use(middleware.RequireRoles("ADMIN"))
		{
			admin.GET("/contents", adminHandler.ListAllContents)
			admin.POST("/contents/:id/review", adminHandler.ReviewContent)
			admin.POST("/contents/:id/feature", adminHandler.SetFeatured)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Catalog service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down catalog service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Catalog service exited")
}
