package auth

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"thermodash/internal/models"
)

// GormStore keeps sessions in the sessions table next to the users.
type GormStore struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormStore(db *gorm.DB, timeout time.Duration) *GormStore {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GormStore{db: db, timeout: timeout}
}

func (s *GormStore) Create(ctx context.Context, sess *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.db.WithContext(ctx).Create(sess).Error
}

func (s *GormStore) Get(ctx context.Context, sid string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	var sess models.Session
	err := s.db.WithContext(ctx).First(&sess, "sid = ?", sid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *GormStore) Delete(ctx context.Context, sid string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.db.WithContext(ctx).Delete(&models.Session{}, "sid = ?", sid).Error
}

func (s *GormStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	res := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
