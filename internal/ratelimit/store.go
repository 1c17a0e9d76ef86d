// Package ratelimit provides fixed-window request counting keyed by
// category and client IP. Counters live behind the CounterStore interface so
// a shared Redis store keeps multiple instances consistent, while the
// in-memory store serves single-process and test deployments.
package ratelimit

import (
	"context"
	"time"
)

// CounterStore counts hits per key within a fixed window.
type CounterStore interface {
	// Incr increments the counter for key, starting a new window of the given
	// length on the first hit. It returns the count within the current window
	// and the time the window expires.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, expiresAt time.Time, err error)
}
