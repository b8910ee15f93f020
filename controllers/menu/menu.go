package menu

import (
	"strconv"

	"restaurant-pos/services/catalog"
	"restaurant-pos/types"
	"restaurant-pos/types/apperror"
	menuTypes "restaurant-pos/types/menu"

	"github.com/gofiber/fiber/v2"
)

type MenuController struct {
	Catalog *catalog.Service
}

func NewMenuController(s *catalog.Service) *MenuController {
	return &MenuController{Catalog: s}
}

func idParam(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

/*=============================================================================
| Kitchens
===============================================================================*/

func (h *MenuController) Kitchens(c *fiber.Ctx) error {
	kitchens, err := h.Catalog.ListKitchens(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Kitchens fetched successfully", kitchens)
}

func (h *MenuController) StoreKitchen(c *fiber.Ctx) error {
	var req menuTypes.KitchenRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	k, err := h.Catalog.CreateKitchen(c.UserContext(), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Kitchen created successfully", k)
}

func (h *MenuController) UpdateKitchen(c *fiber.Ctx) error {
	id, ok := idParam(c, "kitchenId")
	if !ok {
		return types.BadRequest(c, "Invalid kitchen id")
	}
	var req menuTypes.KitchenRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	k, err := h.Catalog.UpdateKitchen(c.UserContext(), id, &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Kitchen updated successfully", k)
}

func (h *MenuController) DeleteKitchen(c *fiber.Ctx) error {
	id, ok := idParam(c, "kitchenId")
	if !ok {
		return types.BadRequest(c, "Invalid kitchen id")
	}
	if err := h.Catalog.DeleteKitchen(c.UserContext(), id); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Kitchen deleted successfully", nil)
}

/*=============================================================================
| Items
===============================================================================*/

func (h *MenuController) Items(c *fiber.Ctx) error {
	items, err := h.Catalog.ListItems(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Items fetched successfully", items)
}

func (h *MenuController) ShowItem(c *fiber.Ctx) error {
	item, err := h.Catalog.GetItem(c.UserContext(), c.Params("identifier"))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Item fetched successfully", item)
}

func (h *MenuController) StoreItem(c *fiber.Ctx) error {
	var req menuTypes.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	item, err := h.Catalog.CreateItem(c.UserContext(), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Item created successfully", item)
}

func (h *MenuController) UpdateItem(c *fiber.Ctx) error {
	id, ok := idParam(c, "itemId")
	if !ok {
		return types.BadRequest(c, "Invalid item id")
	}
	var req menuTypes.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	item, err := h.Catalog.UpdateItem(c.UserContext(), id, &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Item updated successfully", item)
}

func (h *MenuController) DeleteItem(c *fiber.Ctx) error {
	id, ok := idParam(c, "itemId")
	if !ok {
		return types.BadRequest(c, "Invalid item id")
	}
	if err := h.Catalog.DeleteItem(c.UserContext(), id); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Item deleted successfully", nil)
}

func (h *MenuController) UpdateOffer(c *fiber.Ctx) error {
	id, ok := idParam(c, "itemId")
	if !ok {
		return types.BadRequest(c, "Invalid item id")
	}
	var req menuTypes.OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid offer time format")
	}
	item, err := h.Catalog.SetOffer(c.UserContext(), id, &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Offer updated successfully", item)
}
