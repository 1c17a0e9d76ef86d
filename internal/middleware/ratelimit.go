package middleware

import (
	"fmt"
	"log"
	"strconv"
	"time"

	apperrors "travlr/internal/errors"
	"travlr/internal/ratelimit"
	"travlr/pkg/response"

	"github.com/gin-gonic/gin"
)

// Default rate-limit policies.
const (
	APILimit    = 100
	APIWindow   = 15 * time.Minute
	LoginLimit  = 10
	LoginWindow = time.Hour
)

// RateLimit returns a fixed-window rate limiter keyed by category and client
// IP. The middleware fails open: a counter-store error never blocks a request.
func RateLimit(store ratelimit.CounterStore, category string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", category, c.ClientIP())

		count, expiresAt, err := store.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Printf("Rate limiter error for %s: %v", key, err)
			c.Next()
			return
		}

		retryAfter := int(time.Until(expiresAt).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(expiresAt.Unix(), 10))

		if count > limit {
			response.TooManyRequests(c, apperrors.ErrRateLimited.Error(), retryAfter)
			c.Abort()
			return
		}

		c.Next()
	}
}

// APIRateLimit applies the general API policy (100 requests per 15 minutes).
func APIRateLimit(store ratelimit.CounterStore) gin.HandlerFunc {
	return RateLimit(store, "api", APILimit, APIWindow)
}

// LoginRateLimit applies the stricter login policy (10 attempts per hour).
func LoginRateLimit(store ratelimit.CounterStore) gin.HandlerFunc {
	return RateLimit(store, "login", LoginLimit, LoginWindow)
}
