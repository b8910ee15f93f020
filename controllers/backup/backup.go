package backup

import (
	"fmt"
	"path/filepath"

	backupService "restaurant-pos/services/backup"
	"restaurant-pos/types/apperror"

	"github.com/gofiber/fiber/v2"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BackupController struct {
	Service *backupService.Service
}

func NewBackupController(s *backupService.Service) *BackupController {
	return &BackupController{Service: s}
}

// Export streams a fresh workbook without keeping it on disk.
func (h *BackupController) Export(c *fiber.Ctx) error {
	data, name, err := h.Service.Export(c.UserContext())
	if err != nil {
		return apperror.Respond(c, apperror.Dependency(err, "failed to export data"))
	}
	c.Set(fiber.HeaderContentType, xlsxMime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", name))
	return c.Send(data)
}

// Backup writes a rotated backup file and serves it.
func (h *BackupController) Backup(c *fiber.Ctx) error {
	path, err := h.Service.Create(c.UserContext())
	if err != nil {
		return apperror.Respond(c, apperror.Dependency(err, "failed to create backup"))
	}
	c.Set(fiber.HeaderContentType, xlsxMime)
	return c.Download(path, filepath.Base(path))
}
