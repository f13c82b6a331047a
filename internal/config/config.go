// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/lookup.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Raider.io provider
	RaiderIOBaseURL   string
	ProviderPerMinute int
	ProviderTimeout   time.Duration

	// Cache
	CacheEnabled     bool
	CacheTTL         time.Duration
	NegativeCacheTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Nothing here is required — the provider is public and unauthenticated.
func Load() (*Config, error) {
	return &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		RaiderIOBaseURL:   envOr("RAIDERIO_BASE_URL", "https://raider.io/api/v1"),
		ProviderPerMinute: envInt("RAIDERIO_REQUESTS_PER_MINUTE", 120),
		ProviderTimeout:   time.Duration(envInt("RAIDERIO_TIMEOUT_SECONDS", 30)) * time.Second,

		CacheEnabled:     envBool("CACHE_ENABLED", true),
		CacheTTL:         time.Duration(envInt("CACHE_TTL_SECONDS", 120)) * time.Second,
		NegativeCacheTTL: time.Duration(envInt("NEGATIVE_CACHE_TTL_SECONDS", 30)) * time.Second,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
