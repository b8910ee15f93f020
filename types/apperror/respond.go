package apperror

import (
	"restaurant-pos/logger"
	"restaurant-pos/types"

	"github.com/gofiber/fiber/v2"
)

// Respond writes err in the API envelope with the status of its kind.
// Dependency failures are logged and their cause is not sent to the client.
func Respond(c *fiber.Ctx, err error) error {
	appErr := From(err)
	status := appErr.HTTPStatus()
	if appErr.Kind == KindDependencyFailure {
		logger.Error(c.Method()+" "+c.Path()+": "+appErr.Message, appErr.Err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Message: appErr.Message,
		Status:  status,
		Data:    fiber.Map{"kind": appErr.Kind},
	})
}
