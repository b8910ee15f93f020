package server

import (
	"time"

	"restaurant-pos/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ServerController struct {
	DB      *gorm.DB
	started time.Time
}

func NewServerController(db *gorm.DB) *ServerController {
	return &ServerController{DB: db, started: time.Now()}
}

// Health reports process uptime and whether the database answers a ping.
func (h *ServerController) Health(c *fiber.Ctx) error {
	dbStatus := "up"
	if h.DB == nil {
		dbStatus = "not configured"
	} else if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
		dbStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}
	return types.OK(c, status, "Server is running", fiber.Map{
		"database": dbStatus,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}
