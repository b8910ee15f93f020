package middleware

import (
	"restaurant-pos/logger"
	"restaurant-pos/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger queues a sanitized audit entry for every request once the
// handler has produced its response.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if asyncLogger != nil {
			asyncLogger.Log(utils.CreateSanitizedLogEntry(c))
		}
		return err
	}
}
