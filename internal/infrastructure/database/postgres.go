package database

import (
	"fmt"
	"log"

	"github.com/chingz/pos-api/internal/config"
	"github.com/chingz/pos-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Tenant and staff
		&entity.Restaurant{},
		&entity.User{},

		// Menu
		&entity.MenuItem{},

		// Billing
		&entity.Invoice{},
		&entity.InvoiceItem{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// defaultRestaurant builds the restaurant row seeded on first boot. The
// configured WhatsApp country code becomes the restaurant's default for
// customer phone normalization.
func defaultRestaurant(cfg *config.Config) entity.Restaurant {
	return entity.Restaurant{
		Name:               cfg.Restaurant.Name,
		Slug:               cfg.Restaurant.Slug,
		Tagline:            cfg.Restaurant.Tagline,
		Address:            cfg.Restaurant.Address,
		Phone:              cfg.Restaurant.Phone,
		DefaultCountryCode: cfg.WhatsApp.CountryCode,
	}
}

// SeedDefaultData seeds the default restaurant and its admin user. Both are
// created only if missing, so repeated boots are safe.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	var restaurant entity.Restaurant
	if err := db.Where("slug = ?", cfg.Restaurant.Slug).First(&restaurant).Error; err != nil {
		restaurant = defaultRestaurant(cfg)
		if err := db.Create(&restaurant).Error; err != nil {
			return fmt.Errorf("failed to create default restaurant: %w", err)
		}
		log.Printf("Default restaurant created: %s", cfg.Restaurant.Slug)
	}

	if cfg.Restaurant.AdminEmail != "" && cfg.Restaurant.AdminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", cfg.Restaurant.AdminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Restaurant.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			adminUser := entity.User{
				RestaurantID: restaurant.ID,
				Name:         "Admin",
				Email:        cfg.Restaurant.AdminEmail,
				Password:     string(hashedPassword),
				Role:         entity.RoleAdmin,
			}
			if err := db.Create(&adminUser).Error; err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}
			log.Printf("Admin user created: %s", cfg.Restaurant.AdminEmail)
		} else {
			log.Printf("Admin user already exists: %s", cfg.Restaurant.AdminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
