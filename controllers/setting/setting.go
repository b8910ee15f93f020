package setting

import (
	settingModel "restaurant-pos/models/setting"
	settingService "restaurant-pos/services/setting"
	"restaurant-pos/types"
	"restaurant-pos/types/apperror"

	"github.com/gofiber/fiber/v2"
)

type SettingController struct {
	Service *settingService.Service
}

func NewSettingController(s *settingService.Service) *SettingController {
	return &SettingController{Service: s}
}

func (h *SettingController) Show(c *fiber.Ctx) error {
	settings, err := h.Service.Get(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Settings fetched successfully", settings)
}

// Store replaces the settings. Keys left out of the body fall back to the
// defaults.
func (h *SettingController) Store(c *fiber.Ctx) error {
	req := settingModel.Defaults()
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	settings, err := h.Service.Save(c.UserContext(), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Settings updated successfully", settings)
}
