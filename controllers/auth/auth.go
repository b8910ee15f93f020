package auth

import (
	"errors"
	"os"

	authService "restaurant-pos/services/auth"
	"restaurant-pos/types"
	"restaurant-pos/types/apperror"
	authTypes "restaurant-pos/types/auth"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Service *authService.Service
}

func NewAuthController(s *authService.Service) *AuthController {
	return &AuthController{Service: s}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	u, err := h.Service.Register(c.UserContext(), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Registration successful", u)
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	res, err := h.Service.Login(c.UserContext(), &req)
	if errors.Is(err, authService.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}
	if err != nil {
		return apperror.Respond(c, err)
	}

	h.setSecureCookie(c, "access", res.Token, int(h.Service.TokenTTL.Seconds()))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   res.Token,
		Data:    res,
	})
}

func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.setSecureCookie(c, "access", "", -1)
	return types.OK(c, fiber.StatusOK, "Logged out successfully", nil)
}
