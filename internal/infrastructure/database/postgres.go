package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lmf-services/backoffice-api/internal/config"
	"github.com/lmf-services/backoffice-api/internal/domain/entity"
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

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Client{},
		&entity.Site{},
		&entity.BankAccount{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the default admin user and a
// creditor bank account so invoices can be generated out of the box
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var userCount int64
	if err := db.Model(&entity.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("change-me"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}
		admin := entity.User{
			FirstName: "John",
			LastName:  "Doe",
			Role:      "admin",
			Login:     "john.doe",
			Password:  string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Warning: failed to create default admin user: %v", err)
		}
	}

	var accountCount int64
	if err := db.Model(&entity.BankAccount{}).Count(&accountCount).Error; err != nil {
		return err
	}
	if accountCount == 0 {
		account := entity.BankAccount{
			DisplayName:    "Compte UBS",
			BankName:       "UBS Switzerland AG",
			Currency:       "CHF",
			IBAN:           "CH44 3199 9123 0008 8901 2",
			CompanyName:    "LMF Services Sàrl",
			Address:        "Rue de la Servette",
			BuildingNumber: "45",
			Zip:            "1202",
			City:           "Genève",
			Country:        "CH",
			Active:         true,
		}
		if err := db.Create(&account).Error; err != nil {
			log.Printf("Warning: failed to create default bank account: %v", err)
		}
	}

	log.Println("Default data seeded successfully")
	return nil
}
