package handlers

import (
	"context"
	"net/http"

	"thermodash/internal/models"
)

type ReadingStore interface {
	LatestReadings(ctx context.Context, count int) ([]models.Reading, error)
	LatestPerSensor(ctx context.Context) ([]models.Reading, error)
	ReadingsForUser(ctx context.Context, count int, userID int64) ([]models.Reading, error)
}

type UserStore interface {
	AddUser(ctx context.Context, email, phone string, role models.Role, digest string) (int64, error)
	ValidateUser(ctx context.Context, email, password string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type KeyStore interface {
	AddAccessKey(ctx context.Context, email, key string) (*models.AccessKey, error)
	ListAccessKeys(ctx context.Context) ([]models.AccessKeyListing, error)
}

type AuditStore interface {
	RecordAudit(ctx context.Context, userID *int64, action string, meta any) error
	ListAudit(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is everything the HTTP layer needs from the data access layer.
type Store interface {
	ReadingStore
	UserStore
	KeyStore
	AuditStore
	Pinger
}

type Sessions interface {
	Login(w http.ResponseWriter, r *http.Request, u *models.User) error
	Resolve(r *http.Request) (*models.User, error)
	Logout(w http.ResponseWriter, r *http.Request) error
}
