package sales

import (
	"time"

	salesService "restaurant-pos/services/sales"
	"restaurant-pos/types"
	"restaurant-pos/types/apperror"
	salesTypes "restaurant-pos/types/sales"

	"github.com/gofiber/fiber/v2"
)

type SalesController struct {
	Service *salesService.Service
}

func NewSalesController(s *salesService.Service) *SalesController {
	return &SalesController{Service: s}
}

func (h *SalesController) Store(c *fiber.Ctx) error {
	var req salesTypes.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	inv, err := h.Service.Create(c.UserContext(), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Sale saved successfully", inv)
}

// Index lists invoices. ?date=today or ?date=YYYY-MM-DD limits them to a day.
func (h *SalesController) Index(c *fiber.Ctx) error {
	var day *time.Time
	switch d := c.Query("date"); d {
	case "":
	case "today":
		now := time.Now()
		day = &now
	default:
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			return types.BadRequest(c, "date must be today or YYYY-MM-DD")
		}
		day = &parsed
	}
	invoices, err := h.Service.List(c.UserContext(), day)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Sales fetched successfully", invoices)
}

func (h *SalesController) Show(c *fiber.Ctx) error {
	inv, err := h.Service.Get(c.UserContext(), c.Params("invoiceNo"))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Sale fetched successfully", inv)
}

func (h *SalesController) UpdateStatus(c *fiber.Ctx) error {
	var req salesTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	inv, err := h.Service.UpdateStatus(c.UserContext(), c.Params("invoiceNo"), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Sale status updated successfully", inv)
}
