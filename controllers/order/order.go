package order

import (
	"strconv"
	"strings"

	"restaurant-pos/services/tracker"
	"restaurant-pos/types"
	"restaurant-pos/types/apperror"
	orderTypes "restaurant-pos/types/order"
	"restaurant-pos/types/validation"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Tracker *tracker.Tracker
}

func NewOrderController(t *tracker.Tracker) *OrderController {
	return &OrderController{Tracker: t}
}

// Store creates an active order.
func (h *OrderController) Store(c *fiber.Ctx) error {
	var req orderTypes.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return types.BadRequest(c, validation.Message(err))
	}

	res, err := h.Tracker.CreateOrder(c.UserContext(), req.ToInput())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Order created successfully", res)
}

func (h *OrderController) Index(c *fiber.Ctx) error {
	orders, err := h.Tracker.ListActiveOrders(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Active orders fetched successfully", orders)
}

func (h *OrderController) Show(c *fiber.Ctx) error {
	o, err := h.Tracker.GetOrder(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Order fetched successfully", o)
}

// Update patches an order. When the body assigns a delivery person the order
// is handed over and the trip report is returned instead.
func (h *OrderController) Update(c *fiber.Ctx) error {
	var req orderTypes.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return types.BadRequest(c, validation.Message(err))
	}

	res, err := h.Tracker.UpdateOrder(c.UserContext(), c.Params("orderId"), req.ToPatch())
	if err != nil {
		return apperror.Respond(c, err)
	}
	if res.TripReport != nil {
		return types.OK(c, fiber.StatusOK, "Order assigned to delivery person", res.TripReport)
	}
	return types.OK(c, fiber.StatusOK, "Order updated successfully", res.Order)
}

func (h *OrderController) Delete(c *fiber.Ctx) error {
	if err := h.Tracker.DeleteOrder(c.UserContext(), c.Params("orderId")); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Order deleted successfully", nil)
}

func (h *OrderController) MarkPrepared(c *fiber.Ctx) error {
	var req orderTypes.KitchenActionRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return types.BadRequest(c, validation.Message(err))
	}

	item, err := h.Tracker.MarkItemPrepared(c.UserContext(), c.Params("orderId"), c.Params("itemId"), req.Kitchen)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Item marked as prepared", fiber.Map{
		"status": item.KitchenStatuses[strings.TrimSpace(req.Kitchen)],
		"item":   item,
	})
}

func (h *OrderController) MarkPickedUp(c *fiber.Ctx) error {
	var req orderTypes.KitchenActionRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return types.BadRequest(c, validation.Message(err))
	}

	res, err := h.Tracker.MarkItemPickedUp(c.UserContext(), c.Params("orderId"), c.Params("itemId"), req.Kitchen)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Item marked as picked up", res)
}

// KitchenOrders serves the kitchen display copy of every active order.
func (h *OrderController) KitchenOrders(c *fiber.Ctx) error {
	orders, err := h.Tracker.ListKitchenOrders(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Kitchen orders fetched successfully", orders)
}

func (h *OrderController) Reconcile(c *fiber.Ctx) error {
	report, err := h.Tracker.ReconcileProjection(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Kitchen orders reconciled", report)
}

// PickedUpItems lists the pick up history, optionally for one kitchen.
func (h *OrderController) PickedUpItems(c *fiber.Ctx) error {
	entries, err := h.Tracker.ListPickedUpLog(c.UserContext(), c.Query("kitchen"))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Picked up items fetched successfully", entries)
}

func (h *OrderController) DeletePickedUpItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return types.BadRequest(c, "Invalid entry id")
	}
	if err := h.Tracker.DeletePickedUpLogEntry(c.UserContext(), uint(id)); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Picked up entry deleted successfully", nil)
}
