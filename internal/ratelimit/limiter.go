// Package ratelimit counts attempts per client in fixed Redis windows.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of one attempt.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter records an attempt for (purpose, principal) and decides on it.
type Limiter interface {
	Allow(ctx context.Context, purpose, principal string) (Decision, error)
}

// RedisLimiter allows MaxAttempts per Window. The window starts at the
// first attempt and the key expires with it.
type RedisLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLimiter(client *redis.Client, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

func getAttemptsKey(purpose, principal string) string {
	return fmt.Sprintf("rate_limit:%s:%s", purpose, principal)
}

func (l *RedisLimiter) Allow(ctx context.Context, purpose, principal string) (Decision, error) {
	key := getAttemptsKey(purpose, principal)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to count attempt: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set attempt window: %w", err)
		}
	}

	if count <= int64(l.maxAttempts) {
		return Decision{Allowed: true, Remaining: l.maxAttempts - int(count)}, nil
	}

	ttl, err := l.client.PTTL(ctx, key).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to read attempt window: %w", err)
	}
	if ttl <= 0 {
		// Lost the EXPIRE (crash between INCR and EXPIRE); restart the window.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set attempt window: %w", err)
		}
		ttl = l.window
	}
	return Decision{Allowed: false, RetryAfter: ttl}, nil
}

// Noop allows everything. Used when rate limiting is disabled.
type Noop struct{}

func (Noop) Allow(context.Context, string, string) (Decision, error) {
	return Decision{Allowed: true}, nil
}
