package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	HTTPAddr string

	// Upstream dataset endpoint (the remote source of EVENTS_MASTER).
	// Empty means offline mode: only cache and the bundled snapshot are used.
	DatasetURL   string
	FetchTimeout time.Duration

	// Redis & Caching
	RedisURL   string
	DatasetTTL time.Duration

	// Venue-local timezone used to anchor the date+time columns.
	EventTimezone string

	// Background refresh; 0 disables the ticker.
	RefreshInterval time.Duration

	// Rate Limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8084")

	cfg.DatasetURL = getEnv("DATASET_URL", "")
	cfg.FetchTimeout = getDuration("FETCH_TIMEOUT", 10*time.Second)

	cfg.RedisURL = getEnv("REDIS_URL", "redis://localhost:6379/0")
	cfg.DatasetTTL = getDuration("DATASET_TTL", 15*time.Minute)

	cfg.EventTimezone = getEnv("EVENT_TZ", "America/Mexico_City")
	cfg.RefreshInterval = getDuration("REFRESH_INTERVAL", 0)

	// Rate Limiting Defaults: 100 reqs / 1 min
	cfg.RLEnabled = getEnv("RL_ENABLED", "true") == "true"
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 100)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)

	// validation
	if cfg.DatasetTTL <= 0 {
		return nil, fmt.Errorf("DATASET_TTL must be positive")
	}
	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be positive")
	}
	// DatasetURL: dev may run offline; outside dev a remote source is required
	if cfg.AppEnv != "dev" && cfg.DatasetURL == "" {
		return nil, fmt.Errorf("missing DATASET_URL (required when APP_ENV != dev)")
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
