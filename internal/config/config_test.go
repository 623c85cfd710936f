package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "DATABASE_URL", "SESSION_SECRET", "SESSION_BACKEND", "SESSION_TTL",
	"REDIS_URL", "APP_ENV", "NODE_ENV", "LOG_LEVEL", "QUERY_TIMEOUT", "MAX_COUNT",
	"DB_MAX_OPEN_CONNS", "SEED_FILE", "OTEL_EXPORTER_OTLP_ENDPOINT", "TRACE_STDOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", c.Port)
	assert.Equal(t, "postgres", c.SessionBackend)
	assert.Equal(t, 30*24*time.Hour, c.SessionTTL)
	assert.Equal(t, 5*time.Second, c.QueryTimeout)
	assert.Equal(t, 10000, c.MaxCount)
	assert.Equal(t, 10, c.DBMaxOpenConns)
	assert.Equal(t, "production", c.Env)
	assert.False(t, c.InsecureSecret)
}

func TestLoadRequiresSecretOutsideDevelopment(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	assert.ErrorContains(t, err, "SESSION_SECRET")

	t.Setenv("NODE_ENV", "development")
	c, err := Load()
	require.NoError(t, err)
	assert.True(t, c.Development())
	assert.True(t, c.InsecureSecret)
	assert.NotEmpty(t, c.SessionSecret)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "x")
	t.Setenv("SESSION_BACKEND", "etcd")
	t.Setenv("QUERY_TIMEOUT", "soon")
	t.Setenv("MAX_COUNT", "0")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "SESSION_BACKEND")
	assert.ErrorContains(t, err, "QUERY_TIMEOUT")
	assert.ErrorContains(t, err, "MAX_COUNT")
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - email: admin@example.com
    phone: "555-0100"
    role: admin
    password: hunter2
sensors:
  - thermometer_id: 28-000001
    place: sauna
    pi_id: 1
    hostname: pi-1
assignments:
  - email: admin@example.com
    thermometers: [28-000001]
`), 0o600))

	s, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, s.Users, 1)
	assert.Equal(t, "admin", s.Users[0].Role)
	require.Len(t, s.Sensors, 1)
	assert.Equal(t, int64(1), s.Sensors[0].PiID)
	assert.Equal(t, []string{"28-000001"}, s.Assignments[0].Thermometers)
}

func TestLoadSeedRejectsIncompleteUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - email: a@b\n"), 0o600))
	_, err := LoadSeed(path)
	assert.Error(t, err)
}
