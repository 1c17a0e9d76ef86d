// Package service contains business logic for the application.
package service

import (
	"context"
	"errors"
	"time"

	apperrors "travlr/internal/errors"
	"travlr/internal/models"
	"travlr/internal/repository"
	"travlr/pkg/auth"
)

// Account lockout policy.
const (
	maxLoginAttempts = 5
	lockoutDuration  = 15 * time.Minute
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager auth.TokenManager
	now        func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtManager auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		now:        time.Now,
	}
}

// Register creates a new user account and returns a signed token.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	salt, hash, err := auth.SetPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:   req.Email,
		Name:    req.Name,
		Salt:    salt,
		Hash:    hash,
		Role:    models.RoleUser,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{Token: token}, nil
}

// Login authenticates a user and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{Token: token}, nil
}

// Authenticate verifies credentials and enforces the lockout policy. Both the
// token-based login and the session-based page login go through here. Unknown
// emails and wrong passwords return the same error so the response does not
// reveal which accounts exist.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Locked(s.now()) {
		return nil, apperrors.ErrAccountLocked
	}

	if !auth.ValidPassword(password, user.Salt, user.Hash) {
		attempts, err := s.userRepo.IncrementLoginAttempts(ctx, user.ID)
		if err == nil && attempts >= maxLoginAttempts {
			_ = s.userRepo.LockAccount(ctx, user.ID, s.now().Add(lockoutDuration))
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.LoginAttempts > 0 {
		_ = s.userRepo.ResetLoginAttempts(ctx, user.ID)
	}

	return user, nil
}
