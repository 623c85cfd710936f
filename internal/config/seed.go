package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed describes fixture data: users, sensors, and which users may read
// which thermometers.
type Seed struct {
	Users       []SeedUser       `yaml:"users"`
	Sensors     []SeedSensor     `yaml:"sensors"`
	Assignments []SeedAssignment `yaml:"assignments"`
}

type SeedUser struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

type SeedSensor struct {
	ThermometerID string `yaml:"thermometer_id"`
	Place         string `yaml:"place"`
	PiID          int64  `yaml:"pi_id"`
	Hostname      string `yaml:"hostname"`
	Address       string `yaml:"address"`
}

type SeedAssignment struct {
	Email        string   `yaml:"email"`
	Thermometers []string `yaml:"thermometers"`
}

func LoadSeed(path string) (*Seed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var s Seed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	for i, u := range s.Users {
		if u.Email == "" || u.Password == "" {
			return nil, fmt.Errorf("seed user %d: email and password required", i)
		}
	}
	for i, sn := range s.Sensors {
		if sn.ThermometerID == "" {
			return nil, fmt.Errorf("seed sensor %d: thermometer_id required", i)
		}
	}
	return &s, nil
}
