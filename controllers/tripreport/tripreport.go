package tripreport

import (
	"restaurant-pos/services/tracker"
	"restaurant-pos/types"
	"restaurant-pos/types/apperror"

	"github.com/gofiber/fiber/v2"
)

type TripReportController struct {
	Tracker *tracker.Tracker
}

func NewTripReportController(t *tracker.Tracker) *TripReportController {
	return &TripReportController{Tracker: t}
}

// Index lists the trips of one delivery person, newest first.
func (h *TripReportController) Index(c *fiber.Ctx) error {
	trips, err := h.Tracker.ListTripReports(c.UserContext(), c.Params("employeeId"))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Trip reports fetched successfully", trips)
}

// MarkPickedUp confirms the delivery person collected the order.
func (h *TripReportController) MarkPickedUp(c *fiber.Ctx) error {
	trip, err := h.Tracker.MarkTripPickedUp(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return types.OK(c, fiber.StatusOK, "Trip marked as picked up", trip)
}
