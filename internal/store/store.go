// Package store is the data access layer. Every call runs under its own
// timeout and uses bound parameters only.
package store

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const DefaultQueryTimeout = 5 * time.Second

type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

func New(db *gorm.DB, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &Store{db: db, timeout: timeout}
}

// conn returns a session bound to a context that expires after the query
// timeout. Callers must invoke cancel.
func (s *Store) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	return s.db.WithContext(ctx), cancel
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
