package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// RateLimiter limits each client IP to max requests per expiration window.
// Non-positive values fall back to 60 requests per minute.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if max <= 0 {
		max = 60
	}
	if expiration <= 0 {
		expiration = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Error: "Too many requests",
				Code:  fiber.StatusTooManyRequests,
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
