package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleRecord mirrors the Role enumeration so that joins can read labels.
type RoleRecord struct {
	RoleID int64  `gorm:"column:role_id;primaryKey;autoIncrement:false" json:"role_id"`
	Role   string `gorm:"column:role;uniqueIndex;not null" json:"role"`
}

func (RoleRecord) TableName() string { return "roles" }

type User struct {
	UserID       int64  `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Email        string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"column:phone" json:"phone"`
	Role         Role   `gorm:"column:role_id;not null;index" json:"role"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// AccessKey is an opaque credential an admin issues to a user. Status is
// stored and displayed but not enforced anywhere.
type AccessKey struct {
	KeyID        int64     `gorm:"column:key_id;primaryKey;autoIncrement" json:"key_id"`
	OwnerID      int64     `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Key          string    `gorm:"column:key;uniqueIndex;not null" json:"key"`
	Status       *string   `gorm:"column:status" json:"status,omitempty"`
	CreationTime time.Time `gorm:"column:creation_time;not null;index" json:"creation_time"`
}

func (AccessKey) TableName() string { return "access_keys" }

// AccessKeyListing is one row of the admin key overview.
type AccessKeyListing struct {
	UserID       int64     `gorm:"column:user_id" json:"user_id"`
	Email        string    `gorm:"column:email" json:"email"`
	Role         Role      `gorm:"column:role" json:"role"`
	KeyID        int64     `gorm:"column:key_id" json:"key_id"`
	Key          string    `gorm:"column:key" json:"key"`
	Status       *string   `gorm:"column:status" json:"status,omitempty"`
	CreationTime time.Time `gorm:"column:creation_time" json:"creation_time"`
}

type Session struct {
	SID       string    `gorm:"column:sid;primaryKey;size:64" json:"sid"`
	UserID    int64     `gorm:"column:user_id;index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"column:expires_at;index;not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

type Sensor struct {
	SensorID      int64  `gorm:"column:sensor_id;primaryKey;autoIncrement" json:"sensor_id"`
	ThermometerID string `gorm:"column:thermometer_id;uniqueIndex;not null" json:"thermometer_id"`
	Place         string `gorm:"column:place" json:"place"`
	PiID          int64  `gorm:"column:pi_id;index" json:"pi_id"`
	Hostname      string `gorm:"column:hostname" json:"hostname"`
	Address       string `gorm:"column:address" json:"address"`
}

func (Sensor) TableName() string { return "sensors" }

type SensorUser struct {
	SensorID int64 `gorm:"column:sensor_id;primaryKey;autoIncrement:false"`
	UserID   int64 `gorm:"column:user_id;primaryKey;autoIncrement:false;index"`
}

func (SensorUser) TableName() string { return "sensors_users" }

// Temperature is a single captured measurement. Rows are written by the
// ingestion side; this service only reads them.
type Temperature struct {
	TemperatureID int64     `gorm:"column:temperature_id;primaryKey;autoIncrement" json:"temperature_id"`
	ThermometerID string    `gorm:"column:thermometer_id;index;not null" json:"thermometer_id"`
	CaptureTime   time.Time `gorm:"column:capture_time;index;not null" json:"capture_time"`
	Temperature   float64   `gorm:"column:temperature;not null" json:"temperature"`
}

func (Temperature) TableName() string { return "temperature" }

// Reading is a temperature row joined with its sensor metadata.
type Reading struct {
	TemperatureID int64     `gorm:"column:temperature_id" json:"temperature_id"`
	Hostname      *string   `gorm:"column:hostname" json:"hostname"`
	Address       *string   `gorm:"column:address" json:"address"`
	Place         *string   `gorm:"column:place" json:"place"`
	ThermometerID string    `gorm:"column:thermometer_id" json:"thermometer_id"`
	PiID          *int64    `gorm:"column:pi_id" json:"pi_id"`
	CaptureTime   time.Time `gorm:"column:capture_time" json:"capture_time"`
	Temperature   float64   `gorm:"column:temperature" json:"temperature"`
}

// PlaceLabel is the series name used by the graph; readings from
// unregistered thermometers fall back to the thermometer id.
func (r Reading) PlaceLabel() string {
	if r.Place != nil && *r.Place != "" {
		return *r.Place
	}
	return r.ThermometerID
}

type AuditLog struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	UserID    *int64    `gorm:"column:user_id;index" json:"user_id,omitempty"`
	Action    string    `gorm:"column:action;not null" json:"action"`
	Metadata  JSONB     `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }

func (a *AuditLog) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
