package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"thermodash/internal/models"
)

// UpsertSensor registers a thermometer or refreshes its metadata.
func (s *Store) UpsertSensor(ctx context.Context, sensor *models.Sensor) error {
	db, cancel := s.conn(ctx)
	defer cancel()
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "thermometer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"place", "pi_id", "hostname", "address"}),
	}).Create(sensor).Error
	if err != nil {
		return fmt.Errorf("upsert sensor %s: %w", sensor.ThermometerID, err)
	}
	if err := db.Where("thermometer_id = ?", sensor.ThermometerID).First(sensor).Error; err != nil {
		return fmt.Errorf("reload sensor %s: %w", sensor.ThermometerID, err)
	}
	return nil
}

// AssignSensor lets userID read the thermometer. Assigning twice is a no-op.
func (s *Store) AssignSensor(ctx context.Context, userID int64, thermometerID string) error {
	db, cancel := s.conn(ctx)
	defer cancel()
	var sensor models.Sensor
	err := db.Where("thermometer_id = ?", thermometerID).First(&sensor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("sensor %s: %w", thermometerID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("find sensor: %w", err)
	}
	err = db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.SensorUser{SensorID: sensor.SensorID, UserID: userID}).Error
	if err != nil {
		return fmt.Errorf("assign sensor: %w", err)
	}
	return nil
}
