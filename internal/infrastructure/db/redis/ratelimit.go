package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles contact-form submissions with a fixed-window counter.
// Key format: contact:rl:<remote_addr>
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing limit submissions per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Hour
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow increments the window counter for key and reports whether the caller
// is still within the limit. The window starts at the first submission.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rkey := l.key(key)

	n, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, rkey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(l.limit), nil
}

func (l *RateLimiter) key(remoteAddr string) string {
	return fmt.Sprintf("contact:rl:%s", remoteAddr)
}
