package db

import (
	"context"
	"fmt"

	"github.com/zulandar/yardline/internal/models"
	"gorm.io/gorm"
)

// AllModels returns every GORM model that makes up the schema.
func AllModels() []interface{} {
	return []interface{}{
		&models.Record{},
	}
}

// AutoMigrate creates missing tables and columns without touching data.
func AutoMigrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// Initialize drops and recreates every table. All stored records are lost;
// this runs on each dashboard start.
func Initialize(ctx context.Context, gdb *gorm.DB) error {
	m := gdb.WithContext(ctx).Migrator()
	if err := m.DropTable(AllModels()...); err != nil {
		return fmt.Errorf("db: drop tables: %w", err)
	}
	if err := m.CreateTable(AllModels()...); err != nil {
		return fmt.Errorf("db: create tables: %w", err)
	}
	return nil
}
