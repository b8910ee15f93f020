package menu

import (
	"net/url"

	"restaurant-pos/types"
	"restaurant-pos/types/apperror"
	menuTypes "restaurant-pos/types/menu"

	"github.com/gofiber/fiber/v2"
)

/*=============================================================================
| Tables
===============================================================================*/

// textParam returns a path parameter with percent-escapes decoded.
func textParam(c *fiber.Ctx, name string) (string, bool) {
	v, err := url.PathUnescape(c.Params(name))
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (h *MenuController) Tables(c *fiber.Ctx) error {
	tables, err := h.Catalog.ListTables(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Tables fetched successfully", tables)
}

func (h *MenuController) StoreTable(c *fiber.Ctx) error {
	var req menuTypes.TableRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	t, err := h.Catalog.CreateTable(c.UserContext(), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Table added successfully", t)
}

func (h *MenuController) UpdateTable(c *fiber.Ctx) error {
	number, ok := textParam(c, "tableNumber")
	if !ok {
		return types.BadRequest(c, "Invalid table number")
	}
	var req menuTypes.TableUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	t, err := h.Catalog.UpdateTable(c.UserContext(), number, &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Table updated successfully", t)
}

func (h *MenuController) DeleteTable(c *fiber.Ctx) error {
	number, ok := textParam(c, "tableNumber")
	if !ok {
		return types.BadRequest(c, "Invalid table number")
	}
	if err := h.Catalog.DeleteTable(c.UserContext(), number); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Table deleted successfully", nil)
}

/*=============================================================================
| Item Groups
===============================================================================*/

func (h *MenuController) ItemGroups(c *fiber.Ctx) error {
	groups, err := h.Catalog.ListItemGroups(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Item groups fetched successfully", groups)
}

func (h *MenuController) StoreItemGroup(c *fiber.Ctx) error {
	var req menuTypes.ItemGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	g, err := h.Catalog.CreateItemGroup(c.UserContext(), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Item group created successfully", g)
}

func (h *MenuController) UpdateItemGroup(c *fiber.Ctx) error {
	id, ok := idParam(c, "groupId")
	if !ok {
		return types.BadRequest(c, "Invalid item group id")
	}
	var req menuTypes.ItemGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	g, err := h.Catalog.UpdateItemGroup(c.UserContext(), id, &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Item group updated successfully", g)
}

func (h *MenuController) DeleteItemGroup(c *fiber.Ctx) error {
	id, ok := idParam(c, "groupId")
	if !ok {
		return types.BadRequest(c, "Invalid item group id")
	}
	if err := h.Catalog.DeleteItemGroup(c.UserContext(), id); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Item group deleted successfully", nil)
}

/*=============================================================================
| Variants
===============================================================================*/

func (h *MenuController) Variants(c *fiber.Ctx) error {
	variants, err := h.Catalog.ListVariants(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Variants fetched successfully", variants)
}

func (h *MenuController) ShowVariant(c *fiber.Ctx) error {
	id, ok := idParam(c, "variantId")
	if !ok {
		return types.BadRequest(c, "Invalid variant id")
	}
	v, err := h.Catalog.GetVariant(c.UserContext(), id)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Variant fetched successfully", v)
}

func (h *MenuController) StoreVariant(c *fiber.Ctx) error {
	var req menuTypes.VariantRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	v, err := h.Catalog.CreateVariant(c.UserContext(), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Variant created successfully", v)
}

func (h *MenuController) UpdateVariant(c *fiber.Ctx) error {
	id, ok := idParam(c, "variantId")
	if !ok {
		return types.BadRequest(c, "Invalid variant id")
	}
	var req menuTypes.VariantRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	v, err := h.Catalog.UpdateVariant(c.UserContext(), id, &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Variant updated successfully", v)
}

func (h *MenuController) DeleteVariant(c *fiber.Ctx) error {
	id, ok := idParam(c, "variantId")
	if !ok {
		return types.BadRequest(c, "Invalid variant id")
	}
	if err := h.Catalog.DeleteVariant(c.UserContext(), id); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Variant deleted successfully", nil)
}

func (h *MenuController) DeleteVariantsByHeading(c *fiber.Ctx) error {
	heading, ok := textParam(c, "heading")
	if !ok {
		return types.BadRequest(c, "Invalid heading")
	}
	n, err := h.Catalog.DeleteVariantsByHeading(c.UserContext(), heading)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Variant deleted successfully", fiber.Map{"deleted": n})
}
