package ports

import "context"

// RateLimiter throttles public form submissions per client key.
type RateLimiter interface {
	// Allow reports whether another submission from key is permitted within
	// the current window.
	Allow(ctx context.Context, key string) (bool, error)
}
