package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// MockLatency delays every request by d to mimic a remote backend in demo mode.
func MockLatency(d time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if d > 0 {
			select {
			case <-time.After(d):
			case <-ctx.UserContext().Done():
			}
		}
		return ctx.Next()
	}
}
