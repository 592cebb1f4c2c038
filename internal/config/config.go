package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port               string
	SessionBackend     string
	SessionKey         string
	RedisAddr          string
	RedisDB            int
	DatabaseURL        string
	CorsOrigins        []string
	LogDir             string
	LogRetentionDays   int
	SocketWriteTimeout time.Duration
}

func Load() Config {
	backend := strings.ToLower(envOr("SESSION_BACKEND", BackendMemory))
	cfg := Config{
		Port:               envOr("PORT", "8080"),
		SessionBackend:     backend,
		SessionKey:         envOr("SESSION_KEY", "protrain_user"),
		RedisAddr:          envOr("REDIS_ADDR", "localhost:6379"),
		RedisDB:            envOrInt("REDIS_DB", 0),
		CorsOrigins:        parseCSV(envOr("CORS_ORIGINS", "")),
		LogDir:             envOr("LOG_DIR", "storage/logs"),
		LogRetentionDays:   retentionDays(envOrInt("LOG_RETENTION_DAYS", 7)),
		SocketWriteTimeout: time.Duration(envOrInt("SOCKET_WRITE_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	if backend == BackendPostgres {
		cfg.DatabaseURL = mustEnv("DATABASE_URL")
	}
	if cfg.SocketWriteTimeout <= 0 {
		cfg.SocketWriteTimeout = 10 * time.Second
	}
	return cfg
}

func retentionDays(value int) int {
	if value <= 0 {
		return 7
	}
	if value > 7 {
		return 7
	}
	return value
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
