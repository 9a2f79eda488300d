// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port             string
	DBPath           string
	AdminPassword    string
	SessionTimeout   time.Duration
	ModelPath        string // empty disables placement prediction
	PlacementLogPath string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "./data/chat.db"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		SessionTimeout:   getEnvDuration("SESSION_TIMEOUT", 10*time.Minute),
		ModelPath:        getEnv("MODEL_PATH", ""),
		PlacementLogPath: getEnv("PLACEMENT_LOG_PATH", "./data/placements.csv"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set")
	}
	if c.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be > 0")
	}
	if c.PlacementLogPath == "" {
		return fmt.Errorf("PLACEMENT_LOG_PATH cannot be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
