package db

import (
	"fmt" // Error wrapping

	"kasir/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Models lists every table owned by the application, parents first
func Models() []any {
	return []any{&domain.Store{}, &domain.User{}, &domain.Buyer{}, &domain.Sale{}, &domain.SaleItem{}}
}

// Migrate performs automatic migration for the database schema
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logrus.Info("Tables migrated.")
	return nil
}
