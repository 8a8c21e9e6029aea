package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	RedisAddr     string
	SessionSecret string
	GinMode       string
	StoreTimeout  time.Duration
}

// Load reads configuration from the environment. DATABASE_URL and
// SESSION_SECRET have no usable defaults; the process must not start
// without them.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	storeTimeout, err := getDurationEnv("STORE_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DatabaseURL:   databaseURL,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		SessionSecret: sessionSecret,
		GinMode:       getEnv("GIN_MODE", "debug"),
		StoreTimeout:  storeTimeout,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
