package database

import (
	"fmt"
	"log"

	"tipadmin-app/config"
	"tipadmin-app/internal/domain/bans"
	"tipadmin-app/internal/domain/billing"
	"tipadmin-app/internal/domain/plans"
	"tipadmin-app/internal/domain/tips"
	"tipadmin-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Configured reports whether the backing database is reachable. Every
// mutation checks this first and aborts with a notice when false, so an
// unconfigured deployment never issues a network call.
func Configured() bool {
	return DB != nil
}

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Println("⚠️ DB_URL not set — running in demo mode, mutations disabled")
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		&users.User{},
		&bans.Ban{},
		&tips.Tip{},
		&plans.Plan{},
		&billing.Payment{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
