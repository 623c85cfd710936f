package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"thermodash/internal/auth"
	"thermodash/internal/config"
)

func testApp(backend, redisURL string) *app {
	return &app{
		cfg: &config.Config{SessionBackend: backend, RedisURL: redisURL},
		lg:  zap.NewNop().Sugar(),
	}
}

func TestNewSessionStore(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := newSessionStore(ctx, testApp("memory", ""))
	require.NoError(t, err)
	closeFn()
	assert.IsType(t, &auth.MemoryStore{}, s)

	s, closeFn, err = newSessionStore(ctx, testApp("postgres", ""))
	require.NoError(t, err)
	closeFn()
	assert.IsType(t, &auth.GormStore{}, s)

	mr := miniredis.RunT(t)
	s, closeFn, err = newSessionStore(ctx, testApp("redis", "redis://"+mr.Addr()+"/0"))
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &auth.RedisStore{}, s)
}

func TestNewSessionStoreRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	url := "redis://" + mr.Addr() + "/0"
	mr.Close()
	_, _, err := newSessionStore(context.Background(), testApp("redis", url))
	assert.Error(t, err)

	_, _, err = newSessionStore(context.Background(), testApp("redis", "not a url"))
	assert.Error(t, err)
}

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "seed", "user"} {
		assert.True(t, names[want], want)
	}
}
