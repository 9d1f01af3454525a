package database

import (
	"fmt"
	"log"
	"os"

	"revenue-copilot/internal/domain/billing"
	"revenue-copilot/internal/domain/customers"
	"revenue-copilot/internal/domain/integrations"
	"revenue-copilot/internal/domain/metrics"
	"revenue-copilot/internal/domain/orgs"
	"revenue-copilot/internal/domain/plans"
	"revenue-copilot/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey so handlers can answer 409 instead of 500.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&users.User{},
		&plans.Plan{},
		&orgs.Organization{},
		&orgs.TeamMember{},
		&customers.Customer{},
		&billing.Subscription{},
		&billing.Invoice{},
		&billing.RevenueEvent{},
		&integrations.Integration{},
		&integrations.APIKey{},
		&metrics.UsageMetric{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
