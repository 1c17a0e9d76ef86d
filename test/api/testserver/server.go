//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"travlr/internal/cache"
	"travlr/internal/database"
	"travlr/internal/handler"
	"travlr/internal/ratelimit"
	"travlr/internal/repository"
	"travlr/internal/router"
	"travlr/internal/service"
	"travlr/internal/storage"
	"travlr/pkg/auth"
	"travlr/pkg/crypto"
	"travlr/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT signing secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token lifetime used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestSessionSecret signs the session cookies used in tests.
	TestSessionSecret = "test-session-secret"
	// TestEncryptionKey protects PII fields in tests (32 bytes).
	TestEncryptionKey = "0123456789abcdef0123456789abcdef"
	// TestDBName is the database name used in tests.
	TestDBName = "travlr_test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo      repository.UserRepository
	TripRepo      repository.TripRepository
	TravellerRepo repository.TravellerRepository

	// Services (for direct service access in tests)
	AuthService      service.AuthServicer
	TripService      service.TripServicer
	UserService      service.UserServicer
	TravellerService service.TravellerServicer

	// Auth
	JWTManager *auth.JWTManager
	Encryptor  *crypto.Encryptor
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoContainer, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoContainer.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoContainer.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Reuse the container's connection for the application database handle
	mongoDB := &database.MongoDB{
		Client:   mongoContainer.Client,
		Database: mongoContainer.Database,
	}

	// Cache and rate-limit counters share the real Redis
	redisCache := cache.NewRedis(redisContainer.URI)
	rateLimits := ratelimit.NewRedisStore(redisCache.Client())

	// Storage uses the real MinIO
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	encryptor, err := crypto.NewEncryptor([]byte(TestEncryptionKey))
	if err != nil {
		cleanupContainers(ctx, mongoContainer, redisContainer, minioContainer)
		return nil, err
	}

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database, encryptor)
	tripRepo := repository.NewTripRepository(mongoDB.Database)
	travellerRepo := repository.NewTravellerRepository(mongoDB.Database)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		cleanupContainers(ctx, mongoContainer, redisContainer, minioContainer)
		return nil, err
	}
	if err := tripRepo.EnsureIndexes(ctx); err != nil {
		cleanupContainers(ctx, mongoContainer, redisContainer, minioContainer)
		return nil, err
	}

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

	// Router. Tests run from test/api, so the template glob is relative to it.
	r := router.Setup(&router.Config{
		AuthHandler:   authHandler,
		TripHandler:   tripHandler,
		UserHandler:   userHandler,
		SystemHandler: systemHandler,
		WebHandler:    webHandler,
		JWTManager:    jwtManager,
		RateLimits:    rateLimits,
		SessionSecret: TestSessionSecret,
		SPAOrigin:     "http://localhost:4200",
		TemplateGlob:  "../../web/templates/*.html",
	})

	return &TestServer{
		Router:           r,
		MongoDB:          mongoContainer,
		Redis:            redisContainer,
		MinIO:            minioContainer,
		UserRepo:         userRepo,
		TripRepo:         tripRepo,
		TravellerRepo:    travellerRepo,
		AuthService:      authService,
		TripService:      tripService,
		UserService:      userService,
		TravellerService: travellerService,
		JWTManager:       jwtManager,
		Encryptor:        encryptor,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	cleanupContainers(ctx, ts.MongoDB, ts.Redis, ts.MinIO)
}

func cleanupContainers(ctx context.Context, mongo *testdb.MongoContainer, redis *testdb.RedisContainer, minio *testdb.MinIOContainer) {
	if minio != nil {
		_ = minio.Cleanup(ctx)
	}
	if redis != nil {
		_ = redis.Cleanup(ctx)
	}
	if mongo != nil {
		_ = mongo.Cleanup(ctx)
	}
}
