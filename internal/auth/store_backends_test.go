package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thermodash/internal/models"
)

func exerciseStore(t *testing.T, s SessionStore) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	live := &models.Session{SID: "live", UserID: 7, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	require.NoError(t, s.Create(ctx, live))

	got, err := s.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.WithinDuration(t, live.ExpiresAt, got.ExpiresAt, time.Second)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, s.Delete(ctx, "live"))
	_, err = s.Get(ctx, "live")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGormStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sessions.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Session{}))

	s := NewGormStore(db, time.Second)
	exerciseStore(t, s)

	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, s.Create(ctx, &models.Session{SID: "old", UserID: 1, ExpiresAt: now.Add(-time.Hour), CreatedAt: now}))
	require.NoError(t, s.Create(ctx, &models.Session{SID: "new", UserID: 1, ExpiresAt: now.Add(time.Hour), CreatedAt: now}))

	n, err := s.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = s.Get(ctx, "new")
	assert.NoError(t, err)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	s := NewRedisStore(rdb)
	exerciseStore(t, s)

	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &models.Session{SID: "ttl", UserID: 3, ExpiresAt: time.Now().Add(time.Minute)}))
	assert.True(t, mr.Exists(redisKeyPrefix+"ttl"))

	mr.FastForward(2 * time.Minute)
	_, err := s.Get(ctx, "ttl")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}
