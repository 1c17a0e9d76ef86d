// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	apperrors "travlr/internal/errors"
	"travlr/internal/models"
	"travlr/pkg/auth"
	"travlr/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
	UserRoleKey  = "userRole"
)

// Auth returns a middleware that validates bearer tokens and stores the
// caller's identity on the context.
func Auth(tokenManager auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		// Validate token
		claims, err := tokenManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, apperrors.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)

		c.Next()
	}
}

// RequireRole returns a middleware that rejects callers whose role is not in
// the allowed set. It must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := GetUserRole(c)
		if !allowed[role] {
			response.Forbidden(c, apperrors.ErrForbidden.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireManager allows managers and admins.
func RequireManager() gin.HandlerFunc {
	return RequireRole(models.RoleManager, models.RoleAdmin)
}

// RequireAdmin allows admins only.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}

// GetUserRole retrieves the user role from the context.
// Returns empty string if not found.
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return ""
	}
	return role.(string)
}
