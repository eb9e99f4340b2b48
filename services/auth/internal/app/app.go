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
	"cinewave/pkg/s3"
	authHTTP "cinewave/services/auth/internal/controller/http"
	"cinewave/services/auth/internal/repo/persistent"
	"cinewave/services/auth/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "cinewave/services/auth/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	userRepo := persistent.NewUserRepository(db)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, s3Client, log)

	authHandler := authHTTP.NewAuthHandler(authUseCase)
	adminHandler := authHTTP.NewAdminHandler(authUseCase)

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
		// Credential endpoints get a tight per-IP limit.
		loginLimit := middleware.RateLimitMiddleware(redisClient, 10, time.Minute)
		api.POST("/register", loginLimit, authHandler.Register)
		api.POST("/login", loginLimit, authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		protected.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
		{
			protected.GET("/me", authHandler.Me)
			protected.PATCH("/me", authHandler.UpdateMe)
			protected.POST("/me/identity", authHandler.UploadIdentity)
		}

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRoles("ADMIN"))
		{
			admin.GET("/creators", adminHandler.ListCreators)
			admin.POST("/creators", adminHandler.CreateCreator)
			admin.GET("/creators/:id", adminHandler.GetCreator)
			admin.PATCH("/creators/:id", adminHandler.UpdateCreator)
			admin.DELETE("/creators/:id", adminHandler.DeleteCreator)

			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PATCH("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Auth service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down auth service...")

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

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Auth service exited")
}
