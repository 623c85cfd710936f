package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"thermodash/internal/models"
)

const redisKeyPrefix = "thermodash:session:"

// RedisStore keeps each session as a JSON value whose key expires with the
// session, so DeleteExpired has nothing to do.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, sess *models.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	b, err := sonic.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.rdb.Set(ctx, redisKeyPrefix+sess.SID, b, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*models.Session, error) {
	b, err := s.rdb.Get(ctx, redisKeyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := sonic.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+sid).Err()
}

func (s *RedisStore) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
