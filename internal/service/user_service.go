package service

import (
	"context"
	"time"

	"travlr/internal/cache"
	apperrors "travlr/internal/errors"
	"travlr/internal/models"
	"travlr/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userCacheTTL = 15 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	repo  repository.UserRepository
	cache cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
	}
}

// GetUser retrieves a user by ID (with caching). Only the safe representation
// is cached so payment details never sit in Redis.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.SafeUser, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// Try cache first
	cacheKey := cache.UserCacheKey(id)
	var safe models.SafeUser
	found, err := s.cache.Get(ctx, cacheKey, &safe)
	if err == nil && found {
		return &safe, nil // Cache hit
	}

	// Cache miss - get from database
	user, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, user.Safe(), userCacheTTL)

	return user.Safe(), nil
}

// GetAllUsers retrieves all users in their safe representation.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.SafeUser, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	safe := make([]models.SafeUser, len(users))
	for i := range users {
		safe[i] = *users[i].Safe()
	}

	return safe, nil
}
