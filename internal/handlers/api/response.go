package api

import (
	"github.com/gofiber/fiber/v3"
)

// jsonError returns an error response with the given HTTP status code. The
// body carries only the fixed message; upstream detail stays in the logs.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
