package service

import (
	"context"
	"testing"
	"time"

	apperrors "travlr/internal/errors"
	"travlr/internal/models"
	"travlr/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(repo, auth.NewJWTManager("test-secret", time.Hour))
}

func TestAuthService_Register(t *testing.T) {
	registerReq := &models.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	t.Run("successfully registers new user", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		resp, err := svc.Register(context.Background(), registerReq)

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		stored, err := repo.FindByEmail(context.Background(), "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, stored.Role)
		assert.NotEmpty(t, stored.Salt)
		assert.NotEmpty(t, stored.Hash)
		assert.NotContains(t, stored.Hash, "password123")
	})

	t.Run("returns error for duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		_, err := svc.Register(context.Background(), registerReq)
		require.NoError(t, err)

		resp, err := svc.Register(context.Background(), registerReq)

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	register := func(t *testing.T, svc *AuthService) {
		t.Helper()
		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Name:     "Login User",
			Email:    "login@example.com",
			Password: "correct-horse1",
		})
		require.NoError(t, err)
	}

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		svc := newAuthService(newFakeUserRepo())
		register(t, svc)

		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "login@example.com",
			Password: "correct-horse1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		svc := newAuthService(newFakeUserRepo())
		register(t, svc)

		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "login@example.com",
			Password: "wrong-password",
		})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})

	t.Run("rejects unknown email with the same error", func(t *testing.T) {
		svc := newAuthService(newFakeUserRepo())

		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever123",
		})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	})
}

func TestAuthService_Lockout(t *testing.T) {
	t.Run("locks account after repeated failures", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Name:     "Lockout User",
			Email:    "lockout@example.com",
			Password: "real-password1",
		})
		require.NoError(t, err)

		for i := 0; i < maxLoginAttempts; i++ {
			_, err := svc.Authenticate(context.Background(), "lockout@example.com", "bad-password")
			assert.Equal(t, apperrors.ErrInvalidCredentials, err)
		}

		// Even the correct password is refused while locked
		_, err = svc.Authenticate(context.Background(), "lockout@example.com", "real-password1")
		assert.Equal(t, apperrors.ErrAccountLocked, err)
	})

	t.Run("lock expires after the lockout window", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Name:     "Expiring Lock",
			Email:    "expiring@example.com",
			Password: "real-password1",
		})
		require.NoError(t, err)

		for i := 0; i < maxLoginAttempts; i++ {
			_, _ = svc.Authenticate(context.Background(), "expiring@example.com", "bad-password")
		}

		// Shift the clock past the lockout deadline
		svc.now = func() time.Time { return time.Now().Add(lockoutDuration + time.Second) }

		user, err := svc.Authenticate(context.Background(), "expiring@example.com", "real-password1")
		require.NoError(t, err)
		assert.Equal(t, "expiring@example.com", user.Email)
	})

	t.Run("successful login clears the failure counter", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newAuthService(repo)

		_, err := svc.Register(context.Background(), &models.RegisterRequest{
			Name:     "Reset User",
			Email:    "reset@example.com",
			Password: "real-password1",
		})
		require.NoError(t, err)

		for i := 0; i < maxLoginAttempts-1; i++ {
			_, _ = svc.Authenticate(context.Background(), "reset@example.com", "bad-password")
		}

		_, err = svc.Authenticate(context.Background(), "reset@example.com", "real-password1")
		require.NoError(t, err)

		stored, err := repo.FindByEmail(context.Background(), "reset@example.com")
		require.NoError(t, err)
		assert.Equal(t, 0, stored.LoginAttempts)
	})
}

func TestAuthService_TokenClaims(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(newFakeUserRepo(), manager)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Claims User",
		Email:    "claims@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	claims, err := manager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "claims@example.com", claims.Email)
	assert.Equal(t, "Claims User", claims.Name)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.NotEmpty(t, claims.UserID)
}
