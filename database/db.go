package database

import (
	"fmt"
	"time"

	"restaurant-pos/config"
	"restaurant-pos/logger"
	"restaurant-pos/models/customer"
	"restaurant-pos/models/employee"
	"restaurant-pos/models/log"
	"restaurant-pos/models/menu"
	"restaurant-pos/models/order"
	"restaurant-pos/models/sales"
	"restaurant-pos/models/setting"
	"restaurant-pos/models/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the postgres connection and runs the migrations.
func InitDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		logger.Error("Failed to migrate the database", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")
	return db, nil
}

func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logger.Success("Successfully connected to the database")
	return db, nil
}

// Migrate creates or updates every table and then the secondary indexes.
func Migrate(db *gorm.DB) error {
	// Stage 1: staff and reference data
	stage1Models := []interface{}{
		&user.User{},
		&employee.Employee{},
		&customer.Customer{},
		&menu.Kitchen{},
		&menu.Item{},
		&menu.ItemGroup{},
		&menu.Variant{},
		&menu.Table{},
		&setting.Setting{},
	}
	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: order tracking
	stage2Models := []interface{}{
		&order.Order{},
		&order.KitchenOrder{},
		&order.PickedUpLogEntry{},
		&order.TripReport{},
		&order.OrderCounter{},
	}
	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: sales and logging
	remainingModels := []interface{}{
		&sales.Invoice{},
		&log.Log{},
	}
	for _, model := range remainingModels {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return createIndexes(db)
}

func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"active_orders status", "CREATE INDEX IF NOT EXISTS idx_active_orders_status ON active_orders(status)"},
		{"active_orders created_at", "CREATE INDEX IF NOT EXISTS idx_active_orders_created_at ON active_orders(created_at)"},
		{"active_orders delivery person", "CREATE INDEX IF NOT EXISTS idx_active_orders_delivery_person ON active_orders(delivery_person_id)"},
		{"picked_up_items kitchen", "CREATE INDEX IF NOT EXISTS idx_picked_up_items_kitchen ON picked_up_items(kitchen, picked_up_time DESC)"},
		{"trip_reports delivery person", "CREATE INDEX IF NOT EXISTS idx_trip_reports_delivery_person ON trip_reports(delivery_person_id, created_at DESC)"},
		{"customers name", "CREATE INDEX IF NOT EXISTS idx_customers_name ON customers(customer_name)"},
		{"invoices status", "CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status)"},
		{"logs method", "CREATE INDEX IF NOT EXISTS idx_logs_method ON logs(method)"},
		{"logs status_code", "CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)"},
		{"logs created_at", "CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)"},
	}
	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create %s index: %w", idx.name, err)
		}
	}
	return nil
}
