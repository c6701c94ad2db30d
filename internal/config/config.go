package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// StatsProvider selects the stats backend: "nba" or "mock".
	StatsProvider string
	// StatsBaseURL overrides the stats API base URL, mainly for tests.
	StatsBaseURL string

	// RedisURL enables Redis-backed sessions and stat caching. When
	// empty, sessions live in process memory and nothing is cached.
	RedisURL   string
	SessionTTL time.Duration
	StatsTTL   time.Duration
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      parseLogLevel(getEnv("LOG_LEVEL", "info")),
		StatsProvider: strings.ToLower(getEnv("STATS_PROVIDER", "nba")),
		StatsBaseURL:  getEnv("STATS_BASE_URL", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		SessionTTL:    parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),
		StatsTTL:      parseDuration(getEnv("STATS_TTL", "1h"), time.Hour),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
