package store

import (
	"context"
	"fmt"
	"time"

	"thermodash/internal/auth"
	"thermodash/internal/models"
)

// AddAccessKey issues key to the user with email. An empty key is replaced
// with a freshly generated one.
func (s *Store) AddAccessKey(ctx context.Context, email, key string) (*models.AccessKey, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if key == "" {
		if key, err = auth.NewAccessKey(); err != nil {
			return nil, fmt.Errorf("generate access key: %w", err)
		}
	}
	db, cancel := s.conn(ctx)
	defer cancel()
	ak := models.AccessKey{OwnerID: u.UserID, Key: key, CreationTime: time.Now().UTC().Truncate(time.Microsecond)}
	if err := db.Create(&ak).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("access key: %w", ErrConflict)
		}
		return nil, fmt.Errorf("add access key: %w", err)
	}
	return &ak, nil
}

// ListAccessKeys returns every key together with its owner.
func (s *Store) ListAccessKeys(ctx context.Context) ([]models.AccessKeyListing, error) {
	db, cancel := s.conn(ctx)
	defer cancel()
	out := []models.AccessKeyListing{}
	err := db.Table("access_keys AS ak").
		Select("u.user_id, u.email, r.role, ak.key_id, ak.key, ak.status, ak.creation_time").
		Joins("JOIN users AS u ON u.user_id = ak.owner_id").
		Joins("JOIN roles AS r ON r.role_id = u.role_id").
		Order("ak.creation_time DESC, ak.key_id DESC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list access keys: %w", err)
	}
	return out, nil
}
