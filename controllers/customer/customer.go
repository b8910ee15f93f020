package customer

import (
	"errors"
	"strconv"

	customerService "restaurant-pos/services/customer"
	"restaurant-pos/types"
	"restaurant-pos/types/apperror"
	customerTypes "restaurant-pos/types/customer"

	"github.com/gofiber/fiber/v2"
)

type CustomerController struct {
	Service *customerService.Service
}

func NewCustomerController(s *customerService.Service) *CustomerController {
	return &CustomerController{Service: s}
}

func (h *CustomerController) Index(c *fiber.Ctx) error {
	customers, err := h.Service.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Customers fetched successfully", customers)
}

func customerID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("customerId"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func duplicatePhone(c *fiber.Ctx, dup *customerService.DuplicatePhoneError) error {
	return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
		Message: "Phone number already exists",
		Status:  fiber.StatusConflict,
		Data:    fiber.Map{"customerName": dup.Existing.CustomerName},
	})
}

// Store answers 409 with the existing customer's name when the phone number
// is taken.
func (h *CustomerController) Store(c *fiber.Ctx) error {
	var req customerTypes.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	customer, err := h.Service.Create(c.UserContext(), &req)
	var dup *customerService.DuplicatePhoneError
	if errors.As(err, &dup) {
		return duplicatePhone(c, dup)
	}
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Customer created successfully", customer)
}

func (h *CustomerController) Show(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return types.BadRequest(c, "Invalid customer id")
	}
	customer, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Customer fetched successfully", customer)
}

func (h *CustomerController) Update(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return types.BadRequest(c, "Invalid customer id")
	}
	var req customerTypes.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	customer, err := h.Service.Update(c.UserContext(), id, &req)
	var dup *customerService.DuplicatePhoneError
	if errors.As(err, &dup) {
		return duplicatePhone(c, dup)
	}
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Customer updated successfully", customer)
}

func (h *CustomerController) Delete(c *fiber.Ctx) error {
	id, ok := customerID(c)
	if !ok {
		return types.BadRequest(c, "Invalid customer id")
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Customer deleted successfully", nil)
}
