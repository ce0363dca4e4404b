package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAPIVersion is used when SF_API_VERSION is not set.
const DefaultAPIVersion = "v59.0"

type Config struct {
	BaseURL       string
	APIVersion    string
	AccessToken   string
	ClientID      string
	ClientSecret  string
	TokenEndpoint string
}

// MissingError reports a required environment variable (or its flag
// equivalent) that was not provided.
type MissingError struct {
	Name string
	Hint string
}

func (e *MissingError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s is required (%s)", e.Name, e.Hint)
	}
	return fmt.Sprintf("%s is required", e.Name)
}

// FromEnv reads the environment without validating it. Dry runs use it so
// that a plan can be previewed offline.
func FromEnv() *Config {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:       strings.TrimRight(os.Getenv("SF_BASE_URL"), "/"),
		APIVersion:    getEnv("SF_API_VERSION", DefaultAPIVersion),
		AccessToken:   os.Getenv("SF_ACCESS_TOKEN"),
		ClientID:      os.Getenv("SF_CLIENT_ID"),
		ClientSecret:  os.Getenv("SF_CLIENT_SECRET"),
		TokenEndpoint: os.Getenv("SF_TOKEN_ENDPOINT"),
	}
	return cfg
}

// Load reads the environment and validates it for REST API calls.
func Load() (*Config, error) {
	cfg := FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings needed by the data API: an instance URL and
// either an access token or a client-credentials pair to obtain one.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return &MissingError{Name: "SF_BASE_URL"}
	}
	if c.AccessToken == "" && !c.HasClientCredentials() {
		return &MissingError{
			Name: "SF_ACCESS_TOKEN",
			Hint: "set it, or set SF_CLIENT_ID and SF_CLIENT_SECRET, or run `sfcrm token` and export access_token",
		}
	}
	return nil
}

// ValidateOAuth checks the settings needed by the client-credentials flow.
func (c *Config) ValidateOAuth() error {
	if c.BaseURL == "" && c.TokenEndpoint == "" {
		return &MissingError{Name: "SF_BASE_URL", Hint: "or pass --base-url"}
	}
	if c.ClientID == "" {
		return &MissingError{Name: "SF_CLIENT_ID"}
	}
	if c.ClientSecret == "" {
		return &MissingError{Name: "SF_CLIENT_SECRET"}
	}
	return nil
}

func (c *Config) HasClientCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// TokenURL returns the OAuth token endpoint, defaulting to
// <base>/services/oauth2/token.
func (c *Config) TokenURL() string {
	if c.TokenEndpoint != "" {
		return c.TokenEndpoint
	}
	return strings.TrimRight(c.BaseURL, "/") + "/services/oauth2/token"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
