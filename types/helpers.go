package types

import "github.com/gofiber/fiber/v2"

// OK writes a success envelope with the given status.
func OK(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(ApiResponse{
		Message: message,
		Status:  status,
		Data:    data,
	})
}

// BadRequest writes a 400 envelope, used for bodies that cannot be parsed.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ApiResponse{
		Message: message,
		Status:  fiber.StatusBadRequest,
		Data:    fiber.Map{"kind": "ValidationError"},
	})
}
