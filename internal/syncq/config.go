package syncq

import (
	"os"
	"time"
)

// Config holds sync queue settings.
type Config struct {
	// Interval between periodic drains.
	Interval time.Duration
	// MaxAttempts is the retry ceiling. An item that fails delivery
	// this many times is dropped (with a dead-letter event).
	MaxAttempts int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval:    15 * time.Second,
		MaxAttempts: 5,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("STUDYTRAIL_SYNC_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Interval = d
		}
	}
	return cfg
}
