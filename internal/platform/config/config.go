// Package config loads the process-wide application configuration.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the application needs. It is built once in main
// and passed into component constructors; nothing below the composition root
// reads the environment directly.
type Config struct {
	// Postgres
	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string

	RunMigrations bool

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Auth
	JWTSecret     string
	JWTExpiration time.Duration

	// Market data provider
	QuoteBaseURL    string
	ChartBaseURL    string
	ProviderTimeout time.Duration

	// SMTP
	SMTPServer   string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	// Cache TTL tiers
	CacheTTLShort  time.Duration // current prices
	CacheTTLMedium time.Duration // exchange rates
	CacheTTLLong   time.Duration // historical series
	CacheTTLDaily  time.Duration // daily summaries
}

// Load builds a Config from environment variables. A .env file in the working
// directory is merged in when present (local development convenience).
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return Config{
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),

		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",

		RedisHost:     getenv("REDIS_HOST", "localhost"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: getenvDuration("JWT_EXPIRATION", 24*time.Hour),

		QuoteBaseURL:    getenv("QUOTE_BASE_URL", "https://query1.finance.yahoo.com/v7/finance"),
		ChartBaseURL:    getenv("CHART_BASE_URL", "https://query1.finance.yahoo.com/v8/finance"),
		ProviderTimeout: getenvDuration("PROVIDER_TIMEOUT", 10*time.Second),

		SMTPServer:   os.Getenv("SMTP_SERVER"),
		SMTPPort:     getenvInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailFrom:    os.Getenv("EMAIL_FROM"),

		CacheTTLShort:  getenvDuration("CACHE_TTL_SHORT", 60*time.Second),
		CacheTTLMedium: getenvDuration("CACHE_TTL_MEDIUM", 300*time.Second),
		CacheTTLLong:   getenvDuration("CACHE_TTL_LONG", 3600*time.Second),
		CacheTTLDaily:  getenvDuration("CACHE_TTL_DAILY", 86400*time.Second),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment", "key", key, "value", v)
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment", "key", key, "value", v)
		return fallback
	}
	return d
}
