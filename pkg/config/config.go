// Package config loads server configuration from the environment and seeds
// the world from a YAML file on first boot.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment selects the logging profile.
const (
	EnvDevelopment = "dev"
	EnvProduction  = "prod"
)

// Config is the process-level configuration, read once at startup.
type Config struct {
	Port      string
	ClientURL string
	Env       string // dev | prod
	WorldFile string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Retention, enforced by the cleanup service. Zero days disables
	// pruning for that table.
	EventRetentionDays int
	LogRetentionDays   int
	CleanupInterval    time.Duration
}

// Load reads configuration from the environment. Database settings live in
// pkg/database and are loaded separately.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "4000"),
		ClientURL:     os.Getenv("CLIENT_URL"),
		Env:           getEnv("SILT_ENV", EnvDevelopment),
		WorldFile:     os.Getenv("WORLD_FILE"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
	}

	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return Config{}, fmt.Errorf("invalid SILT_ENV %q: must be %q or %q",
			cfg.Env, EnvDevelopment, EnvProduction)
	}

	var err error
	if cfg.EventRetentionDays, err = getEnvInt("EVENT_RETENTION_DAYS", 90); err != nil {
		return Config{}, err
	}
	if cfg.LogRetentionDays, err = getEnvInt("PLAYER_LOG_RETENTION_DAYS", 30); err != nil {
		return Config{}, err
	}
	if cfg.CleanupInterval, err = getEnvDuration("CLEANUP_INTERVAL", time.Hour); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
