package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration for the submission service.
type Config struct {
	Port         string
	DatabasePath string

	// SiteURL is the public origin of the marketing site; CORS responses
	// are scoped to it.
	SiteURL string

	ResendAPIKey      string
	EmailFrom         string
	NotificationEmail string

	SentryDSN string

	// RedisAddr switches the rate limiter to a shared Redis store when set.
	RedisAddr     string
	RedisPassword string

	AdminJWTSecret string

	// EmailSendsPerSecond throttles outbound notification email.
	EmailSendsPerSecond float64
}

// Load reads configuration from environment variables, applying defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabasePath:        getEnv("DATABASE_PATH", "submissions.db"),
		SiteURL:             getEnv("SITE_URL", "*"),
		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		EmailFrom:           getEnv("EMAIL_FROM", "leads@andersoncleaning.com"),
		NotificationEmail:   getEnv("NOTIFICATION_EMAIL", "info@andersoncleaning.com"),
		SentryDSN:           os.Getenv("SENTRY_DSN"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		AdminJWTSecret:      os.Getenv("ADMIN_JWT_SECRET"),
		EmailSendsPerSecond: getEnvFloat("EMAIL_SENDS_PER_SECOND", 2),
	}
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvFloat reads a float environment variable with a fallback default
func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
