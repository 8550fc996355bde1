package middleware

import (
	"math"
	"time"

	"trivia-api/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const maxRateWindow = 24 * time.Hour

// RateLimit allows Burst requests per client IP within a sliding window sized
// so that the sustained rate is RPS. Rejected requests get a 429 envelope.
func RateLimit(cfg config.RateLimitConfig) fiber.Handler {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return limiter.New(limiter.Config{
		Max:        burst,
		Expiration: rateWindow(cfg.RPS, burst),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.ErrTooManyRequests
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

// rateWindow is the time needed to earn burst requests at rps. The limiter
// counts in whole seconds.
func rateWindow(rps float64, burst int) time.Duration {
	if rps <= 0 || math.IsNaN(rps) {
		return time.Minute
	}
	seconds := float64(burst) / rps
	if seconds > maxRateWindow.Seconds() {
		return maxRateWindow
	}
	if seconds < 1 {
		return time.Second
	}
	return time.Duration(seconds * float64(time.Second))
}
