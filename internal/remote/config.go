package remote

import (
	"net/http"
	"os"
)

// DefaultBaseURL is the production remote authority.
const DefaultBaseURL = "https://st-v01.onrender.com"

// Config holds remote client settings.
type Config struct {
	BaseURL string
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{BaseURL: DefaultBaseURL}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if u := os.Getenv("STUDYTRAIL_API_BASE"); u != "" {
		cfg.BaseURL = u
	}
	return cfg
}
