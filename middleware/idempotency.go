package middleware

import (
	"restaurant-pos/logger"
	"restaurant-pos/services/idempotency"
	"restaurant-pos/types"

	"github.com/gofiber/fiber/v2"
)

const IdempotencyHeader = "Idempotency-Key"

// Idempotent rejects a request whose Idempotency-Key was already used by a
// successful request. Requests without the header pass through. A request that
// fails releases its key so the client can retry with the same one. A failing
// store does not block the request.
func Idempotent(store idempotency.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(IdempotencyHeader)
		if key == "" || store == nil {
			return c.Next()
		}
		storeKey := c.Method() + ":" + c.Path() + ":" + key
		seen, err := store.Seen(c.UserContext(), storeKey)
		if err != nil {
			logger.Error("Idempotency store unavailable", err)
			return c.Next()
		}
		if seen {
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: "Duplicate request",
				Status:  fiber.StatusConflict,
				Data:    fiber.Map{"idempotencyKey": key},
			})
		}

		err = c.Next()
		if status := c.Response().StatusCode(); err != nil || status < 200 || status >= 300 {
			if relErr := store.Release(c.UserContext(), storeKey); relErr != nil {
				logger.Error("Failed to release idempotency key", relErr)
			}
		}
		return err
	}
}
