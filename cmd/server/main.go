package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travlr/internal/cache"
	"travlr/internal/config"
	"travlr/internal/database"
	"travlr/internal/handler"
	"travlr/internal/ratelimit"
	"travlr/internal/repository"
	"travlr/internal/router"
	"travlr/internal/service"
	"travlr/internal/storage"
	"travlr/internal/validator"
	"travlr/pkg/auth"
	"travlr/pkg/crypto"

	"github.com/gin-gonic/gin"
)

// @title           Travlr Getaways API
// @version         1.0
// @description     Travel booking API with trip management, authentication and role-based access.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:3000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// PII encryption
	encryptor, err := crypto.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to create encryptor: %v", err)
	}

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database, encryptor)
	tripRepo := repository.NewTripRepository(mongoDB.Database)
	travellerRepo := repository.NewTravellerRepository(mongoDB.Database)

	// Unique indexes on email and trip code
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCancel()
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := tripRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create trip indexes: %v", err)
	}

	// Rate limiting on shared Redis counters
	rateLimits := ratelimit.NewRedisStore(redisCache.Client())

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager)
	tripService := service.NewTripService(tripRepo, s3Client)
	userService := service.NewUserService(userRepo, redisCache)
	travellerService := service.NewTravellerService(travellerRepo)
	systemService := service.NewSystemService(mongoDB)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	tripHandler := handler.NewTripHandler(tripService)
	userHandler := handler.NewUserHandler(userService)
	systemHandler := handler.NewSystemHandler(systemService)
	webHandler := handler.NewWebHandler(authService, tripService, travellerService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:   authHandler,
		TripHandler:   tripHandler,
		UserHandler:   userHandler,
		SystemHandler: systemHandler,
		WebHandler:    webHandler,
		JWTManager:    jwtManager,
		RateLimits:    rateLimits,
		SessionSecret: cfg.SessionSecret,
		SPAOrigin:     cfg.SPAOrigin,
		TemplateGlob:  "web/templates/*.html",
		StaticDir:     "web/static",
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
