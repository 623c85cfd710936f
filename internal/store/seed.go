package store

import (
	"context"
	"errors"
	"fmt"

	"thermodash/internal/auth"
	"thermodash/internal/config"
	"thermodash/internal/models"
)

type SeedResult struct {
	UsersCreated int
	UsersSkipped int
	Sensors      int
	Assignments  int
}

// ApplySeed loads fixture data. Existing users are left untouched.
func (s *Store) ApplySeed(ctx context.Context, seed *config.Seed) (SeedResult, error) {
	var res SeedResult
	for _, su := range seed.Users {
		role, err := models.ParseRole(su.Role)
		if err != nil {
			return res, fmt.Errorf("seed user %s: %w", su.Email, err)
		}
		digest, err := auth.HashPassword(su.Password)
		if err != nil {
			return res, err
		}
		if _, err := s.AddUser(ctx, su.Email, su.Phone, role, digest); err != nil {
			if errors.Is(err, ErrConflict) {
				res.UsersSkipped++
				continue
			}
			return res, err
		}
		res.UsersCreated++
	}
	for _, sn := range seed.Sensors {
		sensor := models.Sensor{
			ThermometerID: sn.ThermometerID,
			Place:         sn.Place,
			PiID:          sn.PiID,
			Hostname:      sn.Hostname,
			Address:       sn.Address,
		}
		if err := s.UpsertSensor(ctx, &sensor); err != nil {
			return res, err
		}
		res.Sensors++
	}
	for _, a := range seed.Assignments {
		u, err := s.GetUserByEmail(ctx, a.Email)
		if err != nil {
			return res, fmt.Errorf("seed assignment %s: %w", a.Email, err)
		}
		for _, th := range a.Thermometers {
			if err := s.AssignSensor(ctx, u.UserID, th); err != nil {
				return res, err
			}
			res.Assignments++
		}
	}
	return res, nil
}
