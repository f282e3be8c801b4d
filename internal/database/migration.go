package database

import (
	"fmt"

	"fluxo-caixa/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.FinanceRecord{},
		&models.Supplier{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
