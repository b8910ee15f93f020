package seeders

import (
	"fmt"
	"strings"

	"restaurant-pos/config"
	"restaurant-pos/constants"
	"restaurant-pos/logger"
	"restaurant-pos/models/user"
	"restaurant-pos/utils"

	"gorm.io/gorm"
)

// SeedAdmin creates the configured admin account when it does not exist yet.
// Nothing is seeded without both an email and a password.
func SeedAdmin(db *gorm.DB, cfg config.AdminConfig) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Email))
	if email == "" || cfg.Password == "" {
		logger.Debug("Admin seed skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}
	logger.Info("🔍 Checking admin account...")

	var count int64
	if err := db.Model(&user.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if count > 0 {
		logger.Debug("Admin account already exists: " + email)
		return nil
	}

	hash, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return err
	}
	admin := &user.User{
		FirstName:    cfg.Name,
		Email:        email,
		PhoneNumber:  cfg.Phone,
		PasswordHash: hash,
		Role:         constants.RoleAdmin,
		Company:      "POS 8",
		Status:       "Active",
		Permissions:  user.StringSlice(constants.PermissionsForRole(constants.RoleAdmin)),
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	logger.Success("Admin account created: " + email)
	return nil
}
