package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const devSessionSecret = "thermodash-development-secret"

type Config struct {
	Port           string
	DatabaseURL    string
	SessionSecret  string
	SessionBackend string
	SessionTTL     time.Duration
	RedisURL       string
	Env            string
	LogLevel       string
	QueryTimeout   time.Duration
	MaxCount       int
	DBMaxOpenConns int
	SeedFile       string
	OTLPEndpoint   string
	TraceStdout    bool

	// InsecureSecret is set when the development fallback secret is in use.
	InsecureSecret bool
}

func (c *Config) Development() bool { return c.Env == "development" }

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	c := &Config{
		Port:           getenv("PORT", "3000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionBackend: strings.ToLower(getenv("SESSION_BACKEND", "postgres")),
		RedisURL:       getenv("REDIS_URL", "redis://localhost:6379/0"),
		Env:            strings.ToLower(getenv("APP_ENV", getenv("NODE_ENV", "production"))),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		SeedFile:       os.Getenv("SEED_FILE"),
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	var errs []error
	var err error
	if c.SessionTTL, err = durationEnv("SESSION_TTL", 30*24*time.Hour); err != nil {
		errs = append(errs, err)
	}
	if c.QueryTimeout, err = durationEnv("QUERY_TIMEOUT", 5*time.Second); err != nil {
		errs = append(errs, err)
	}
	if c.MaxCount, err = intEnv("MAX_COUNT", 10000); err != nil {
		errs = append(errs, err)
	}
	if c.DBMaxOpenConns, err = intEnv("DB_MAX_OPEN_CONNS", 10); err != nil {
		errs = append(errs, err)
	}
	if c.TraceStdout, err = boolEnv("TRACE_STDOUT"); err != nil {
		errs = append(errs, err)
	}

	switch c.SessionBackend {
	case "postgres", "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("SESSION_BACKEND: unknown backend %q", c.SessionBackend))
	}
	if c.SessionSecret == "" {
		if !c.Development() {
			errs = append(errs, errors.New("SESSION_SECRET is required outside development"))
		}
		c.SessionSecret = devSessionSecret
		c.InsecureSecret = true
	}
	if c.MaxCount < 1 {
		errs = append(errs, errors.New("MAX_COUNT must be at least 1"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func boolEnv(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}
