package database

import (
	"errors"
	"os"

	"github.com/cafefausse/cafe-fausse/models"
	"github.com/cafefausse/cafe-fausse/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate creates the schema, including the composite unique index on
// (time_slot, table_number) that the admission service relies on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Reservation{},
		&models.User{},
	); err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	return seedAdminUser(db)
}

// seedAdminUser creates the first staff admin account when
// SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are set and the account
// does not exist yet.
func seedAdminUser(db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded admin user %s", email)
	return nil
}
