package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Upstream store API. Credentials are a static pair; when either is
	// missing the counting service serves mock data instead of failing.
	StoreAPIURL string // env: STORE_API_URL, e.g. "https://api.bigcommerce.com/stores"
	StoreHash   string // env: STORE_HASH
	StoreToken  string // env: STORE_ACCESS_TOKEN

	// Counting service
	CacheTTL        time.Duration // env: CACHE_TTL_SECONDS, default 60
	OrderFetchMax   int           // env: ORDER_FETCH_MAX, default 250
	UpstreamTimeout time.Duration // env: UPSTREAM_TIMEOUT_SECONDS, default 10
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		StoreAPIURL:     getEnv("STORE_API_URL", "https://api.bigcommerce.com/stores"),
		StoreHash:       getEnv("STORE_HASH", ""),
		StoreToken:      getEnv("STORE_ACCESS_TOKEN", ""),
		CacheTTL:        getEnvSeconds("CACHE_TTL_SECONDS", 60),
		OrderFetchMax:   getEnvInt("ORDER_FETCH_MAX", 250),
		UpstreamTimeout: getEnvSeconds("UPSTREAM_TIMEOUT_SECONDS", 10),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Second
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasStoreCredentials reports whether both halves of the upstream credential
// pair are configured. Absence routes the counting service to the mock path.
func (c *Config) HasStoreCredentials() bool {
	return c.StoreHash != "" && c.StoreToken != ""
}
