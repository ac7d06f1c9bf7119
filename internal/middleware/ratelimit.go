package middleware

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy defines the behavior when the rate limit store (Redis) is unavailable.
type FailPolicy int

const (
	// FailOpen allows the request to proceed if Redis is unavailable.
	FailOpen FailPolicy = iota
	// FailClosed blocks the request (503 Service Unavailable) if Redis is unavailable.
	FailClosed
)

// rateLimitClient is set by the cache package once Redis is initialized.
var rateLimitClient *redis.Client

// SetRateLimitClient wires the Redis client used for per-action rate limiting.
func SetRateLimitClient(client *redis.Client) {
	rateLimitClient = client
}

// CheckRateLimit reports whether the keyed actor is within its limit.
// Rate limiting is disabled when APP_ENV is "test" or "development" so dev
// and test workflows are not throttled.
func CheckRateLimit(ctx context.Context, key string, max int, window time.Duration, policy FailPolicy) (bool, error) {
	env := os.Getenv("APP_ENV")
	if env == "test" || env == "development" {
		return true, nil
	}
	if rateLimitClient == nil {
		return policy == FailOpen, nil
	}

	count, err := rateLimitClient.Incr(ctx, key).Result()
	if err != nil {
		return policy == FailOpen, err
	}
	if count == 1 {
		rateLimitClient.Expire(ctx, key, window)
	}
	return count <= int64(max), nil
}

// RateLimit limits a named action per client IP. Credential endpoints use
// FailOpen so an unavailable Redis never locks out legitimate users.
func RateLimit(action string, max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s:%s", action, c.IP())
		allowed, err := CheckRateLimit(c.UserContext(), key, max, window, FailOpen)
		if err != nil {
			Logger.WarnContext(c.UserContext(), "rate limit check failed", "action", action, "error", err)
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		}
		return c.Next()
	}
}
