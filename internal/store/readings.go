package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"thermodash/internal/models"
)

const readingColumns = "t.temperature_id, s.hostname, s.address, s.place, t.thermometer_id, s.pi_id, t.capture_time, t.temperature"

func readings(db *gorm.DB) *gorm.DB {
	return db.Table("temperature AS t").
		Select(readingColumns).
		Joins("LEFT JOIN sensors AS s ON s.thermometer_id = t.thermometer_id")
}

// LatestReadings returns the newest count readings across all sensors.
func (s *Store) LatestReadings(ctx context.Context, count int) ([]models.Reading, error) {
	db, cancel := s.conn(ctx)
	defer cancel()
	out := []models.Reading{}
	err := readings(db).
		Order("t.capture_time DESC, t.temperature_id DESC").
		Limit(count).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("latest readings: %w", err)
	}
	return out, nil
}

// LatestPerSensor returns the most recent reading of every thermometer.
func (s *Store) LatestPerSensor(ctx context.Context) ([]models.Reading, error) {
	db, cancel := s.conn(ctx)
	defer cancel()
	newest := db.Model(&models.Temperature{}).
		Select("MAX(temperature_id)").
		Group("thermometer_id")
	out := []models.Reading{}
	err := readings(db).
		Where("t.temperature_id IN (?)", newest).
		Order("s.pi_id, s.place, t.thermometer_id").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("latest per sensor: %w", err)
	}
	return out, nil
}

// ReadingsForUser returns the newest count readings of the thermometers
// assigned to userID. A user without assignments gets an empty slice.
func (s *Store) ReadingsForUser(ctx context.Context, count int, userID int64) ([]models.Reading, error) {
	db, cancel := s.conn(ctx)
	defer cancel()
	assigned := db.Table("sensors AS sa").
		Select("sa.thermometer_id").
		Joins("JOIN sensors_users AS su ON su.sensor_id = sa.sensor_id").
		Where("su.user_id = ?", userID)
	out := []models.Reading{}
	err := readings(db).
		Where("t.thermometer_id IN (?)", assigned).
		Order("t.capture_time DESC, t.temperature_id DESC").
		Limit(count).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("readings for user %d: %w", userID, err)
	}
	return out, nil
}
