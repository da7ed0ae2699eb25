package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/patiponrmutl/SchoolMS/config"
	"github.com/patiponrmutl/SchoolMS/models"
)

// Connect opens the Postgres connection pool and migrates the schema.
// The handle is returned to the caller for injection; there is no
// package-level DB.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables for every persisted model.
// Split out from Connect so tests can run it against their own store.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Attendance{},
		&models.AttendanceRecord{},
		&models.Announcement{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
