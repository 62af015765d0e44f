package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full engine configuration surface.
type Config struct {
	RefData RefDataConfig
	Cache   CacheConfig
	Logging LoggingConfig
}

// RefDataConfig points at an optional site override for the embedded
// reference tables (facility aliases, keyword groups, trend baselines).
type RefDataConfig struct {
	Path string
}

// CacheConfig controls the aggregate memo cache.
type CacheConfig struct {
	Enabled    bool
	MaxEntries int
}

// LoggingConfig holds logger options.
type LoggingConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		RefData: RefDataConfig{
			Path: os.Getenv("VESSELMETRICS_REFDATA_PATH"),
		},
		Cache: CacheConfig{
			Enabled:    getenvBool("VESSELMETRICS_CACHE_ENABLED", true),
			MaxEntries: getenvInt("VESSELMETRICS_CACHE_MAX_ENTRIES", 256),
		},
		Logging: LoggingConfig{
			Level: getenvWithDefault("VESSELMETRICS_LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that configuration fields hold usable values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.RefData.Path != "" {
		if _, err := os.Stat(c.RefData.Path); err != nil {
			return fmt.Errorf("VESSELMETRICS_REFDATA_PATH %s is not readable: %w", c.RefData.Path, err)
		}
	}

	if c.Cache.Enabled && c.Cache.MaxEntries <= 0 {
		return errors.New("VESSELMETRICS_CACHE_MAX_ENTRIES must be positive when the cache is enabled")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("VESSELMETRICS_LOG_LEVEL %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
