package user

import (
	"restaurant-pos/middleware"
	authService "restaurant-pos/services/auth"
	"restaurant-pos/types"
	"restaurant-pos/types/apperror"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Service *authService.Service
}

func NewUserController(s *authService.Service) *UserController {
	return &UserController{Service: s}
}

// GetUserInfo returns the identity carried by the caller's token.
func (h *UserController) GetUserInfo(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid token data",
			Status:  fiber.StatusUnauthorized,
		})
	}
	userInfo := map[string]interface{}{
		"id":          claims.UserID,
		"username":    claims.Username,
		"email":       claims.Email,
		"role":        claims.Role,
		"permissions": claims.Permissions,
	}
	return types.OK(c, fiber.StatusOK, "User fetched successfully", userInfo)
}

func (h *UserController) Index(c *fiber.Ctx) error {
	users, err := h.Service.ListUsers(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Users fetched successfully", users)
}

func (h *UserController) Delete(c *fiber.Ctx) error {
	if err := h.Service.DeleteUser(c.UserContext(), c.Params("email")); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "User deleted successfully", nil)
}
