// Package imgbb provides a client for the imgbb image hosting API.
package imgbb

import (
	"os"
	"time"
)

const (
	// EnvKeyAPIKey is the environment variable for the imgbb API key.
	EnvKeyAPIKey = "IMGBB_API_KEY"

	// EnvKeyBaseURL is the environment variable for overriding the API base URL.
	EnvKeyBaseURL = "IMGBB_BASE_URL"
)

// Config holds configuration for the imgbb API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://api.imgbb.com")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads imgbb configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv(EnvKeyBaseURL)
	if baseURL == "" {
		baseURL = "https://api.imgbb.com"
	}
	return Config{
		APIKey:  os.Getenv(EnvKeyAPIKey),
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
	}
}
