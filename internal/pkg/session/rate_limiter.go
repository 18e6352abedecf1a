// internal/pkg/session/rate_limiter.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckLoginAttempt allows up to 5 login attempts per IP+email per 15 minutes.
func (r *RateLimiter) CheckLoginAttempt(ctx context.Context, ip, email string) (bool, error) {
	return r.check(ctx, fmt.Sprintf("ratelimit:login:%s:%s", ip, email), 5, 15*time.Minute)
}

// ResetLoginAttempts clears the login counter after a successful login.
func (r *RateLimiter) ResetLoginAttempts(ctx context.Context, ip, email string) error {
	return r.client.Del(ctx, fmt.Sprintf("ratelimit:login:%s:%s", ip, email)).Err()
}

// CheckFormSubmission allows up to 5 public form submissions per IP per hour.
// Covers both lead enquiries and test-ride bookings.
func (r *RateLimiter) CheckFormSubmission(ctx context.Context, form, ip string) (bool, error) {
	return r.check(ctx, fmt.Sprintf("ratelimit:form:%s:%s", form, ip), 5, time.Hour)
}

func (r *RateLimiter) check(ctx context.Context, key string, max int64, window time.Duration) (bool, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		r.client.Expire(ctx, key, window)
	}

	return count <= max, nil
}
