package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles repeated failed logins per username using a Redis
// counter with a sliding block window.
// Key format: loginfail:<username>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow reports whether a login attempt for username may proceed. When the
// user is blocked it also returns the seconds until the block expires.
func (l *LoginLimiter) Allow(ctx context.Context, username string) (bool, int64, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return true, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("login limit check: %w", err)
	}
	if n < int64(l.maxAttempts) {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, l.key(username)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("login limit ttl: %w", err)
	}
	return false, int64(ttl.Seconds()), nil
}

// Failure records a failed attempt; the counter expires after the block window.
func (l *LoginLimiter) Failure(ctx context.Context, username string) error {
	key := l.key(username)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limit expire: %w", err)
		}
	}
	return nil
}

// Success clears the failure counter after a successful login.
func (l *LoginLimiter) Success(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *LoginLimiter) key(username string) string {
	return fmt.Sprintf("loginfail:%s", username)
}
