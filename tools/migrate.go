package main

import (
	"fmt"
	"os"

	"restaurant-pos/config"
	"restaurant-pos/database"
	"restaurant-pos/database/seeders"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/migrate.go migrate   - Create or update every table and index")
		fmt.Println("  go run tools/migrate.go seed      - Create the ADMIN_EMAIL account if missing")
		return
	}

	cfg := config.Load()
	db, err := database.Connect(cfg.Database)
	if err != nil {
		fmt.Printf("❌ Database connection failed: %v\n", err)
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "migrate":
		fmt.Println("🚀 Running database migrations...")
		if err := database.Migrate(db); err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Migration completed successfully!")

	case "seed":
		fmt.Println("🌱 Seeding admin account...")
		if err := seeders.SeedAdmin(db, cfg.Admin); err != nil {
			fmt.Printf("❌ Seeding failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Seeding completed successfully!")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Available commands: migrate, seed")
	}
}
