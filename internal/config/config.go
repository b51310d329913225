// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all process-wide settings. It is built once at startup and
// passed explicitly to the components that need it; nothing mutates it
// afterwards.
type Config struct {
	Port          string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTExpires    time.Duration
	FrontendURL   string
	Env           string
}

const defaultJWTExpires = 7 * 24 * time.Hour

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "5000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpires:    defaultJWTExpires,
		FrontendURL:   getenv("FRONTEND_URL", "http://localhost:3000"),
		Env:           getenv("APP_ENV", "development"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %v", err)
		}
		cfg.RedisDB = n
	}

	if v := os.Getenv("JWT_EXPIRES"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRES: %q", v)
		}
		cfg.JWTExpires = d
	}

	return cfg, nil
}

// Production reports whether the process runs in production mode. Error
// responses include diagnostic detail only when this is false.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
