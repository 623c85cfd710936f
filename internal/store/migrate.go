package store

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"thermodash/internal/models"
)

// Migrate creates or updates the schema and makes sure the roles table
// mirrors models.Role.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(
		&models.RoleRecord{},
		&models.User{},
		&models.AccessKey{},
		&models.Session{},
		&models.Sensor{},
		&models.SensorUser{},
		&models.Temperature{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	roles := []models.RoleRecord{
		{RoleID: models.RoleAdmin.ID(), Role: models.RoleAdmin.String()},
		{RoleID: models.RoleUser.ID(), Role: models.RoleUser.String()},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}
