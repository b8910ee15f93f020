package employee

import (
	employeeService "restaurant-pos/services/employee"
	"restaurant-pos/types"
	"restaurant-pos/types/apperror"
	employeeTypes "restaurant-pos/types/employee"

	"github.com/gofiber/fiber/v2"
)

type EmployeeController struct {
	Service *employeeService.Service
}

func NewEmployeeController(s *employeeService.Service) *EmployeeController {
	return &EmployeeController{Service: s}
}

func (h *EmployeeController) Index(c *fiber.Ctx) error {
	employees, err := h.Service.List(c.UserContext())
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Employees fetched successfully", employees)
}

func (h *EmployeeController) Store(c *fiber.Ctx) error {
	var req employeeTypes.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	e, err := h.Service.Create(c.UserContext(), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusCreated, "Employee created successfully", e)
}

func (h *EmployeeController) Update(c *fiber.Ctx) error {
	var req employeeTypes.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest(c, "Invalid request body")
	}
	e, err := h.Service.Update(c.UserContext(), c.Params("employeeId"), &req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Employee updated successfully", e)
}

func (h *EmployeeController) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.UserContext(), c.Params("employeeId")); err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Employee deleted successfully", nil)
}
