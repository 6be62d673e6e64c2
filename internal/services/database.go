package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"signature_builder_echo/internal/campus"
	"signature_builder_echo/internal/models"
)

// InitDB initializes the database connection with connection pooling
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// The directory is read once at startup, a small pool is plenty
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db, nil
}

// CloseDB releases the connection pool behind db. A nil db is a no-op.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&models.Campus{}); err != nil {
		return err
	}

	log.Println("Database migrations completed")
	return nil
}

// SeedCampuses stores dir when the campus table is empty. An existing
// directory is left untouched.
func SeedCampuses(ctx context.Context, db *gorm.DB, dir campus.Directory) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Campus{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count campuses: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := CampusRows(dir)
	if len(rows) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("seed campuses: %w", err)
	}
	log.Printf("Seeded %d campuses", len(rows))
	return nil
}

// LoadCampusDirectory reads the stored campuses in selector order.
func LoadCampusDirectory(ctx context.Context, db *gorm.DB) (campus.Directory, error) {
	var rows []models.Campus
	if err := db.WithContext(ctx).Order("position asc, id asc").Find(&rows).Error; err != nil {
		return campus.Directory{}, fmt.Errorf("load campuses: %w", err)
	}
	return DirectoryFromRows(rows), nil
}

// CampusRows converts a directory to table rows, leaving out the sentinel.
func CampusRows(dir campus.Directory) []models.Campus {
	entries := dir.Entries()
	rows := make([]models.Campus, 0, len(entries))
	for i, c := range entries {
		if c.Label == campus.SentinelLabel {
			continue
		}
		rows = append(rows, models.Campus{Label: c.Label, Address: c.Address, Position: i})
	}
	return rows
}

// DirectoryFromRows builds a directory from stored rows in the given order.
func DirectoryFromRows(rows []models.Campus) campus.Directory {
	campuses := make([]campus.Campus, 0, len(rows))
	for _, r := range rows {
		campuses = append(campuses, campus.Campus{Label: r.Label, Address: r.Address})
	}
	return campus.NewDirectory(campuses)
}
