// Package config provides configuration for the heritage binaries.
// It loads settings from environment variables with the HERITAGE_
// prefix and provides sensible defaults for all configuration options.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration settings for the heritage query
// server.
type Config struct {
	Server   ServerConfig
	Dataset  DatasetConfig
	Security SecurityConfig
	Limits   LimitsConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int    // Server port (default: 6370)
	Host string // Server host (default: 127.0.0.1)
}

// DatasetConfig describes the relationship table served by
// heritage-web.
type DatasetConfig struct {
	Path         string // Path to the delimited relationship table
	ManifestPath string // Optional YAML column manifest
	WatchReload  bool   // Reload the dataset when the file changes (default: true)
}

// SecurityConfig contains security and authentication settings.
type SecurityConfig struct {
	SecurityMode string // Security mode: development, production (default: development)
	APIToken     string // Bearer token required in production mode
}

// LimitsConfig bounds the query API.
type LimitsConfig struct {
	RateLimitPerSec float64 // Sustained request rate (default: 10)
	RateLimitBurst  int     // Maximum burst size (default: 20)
}

// LoadConfig loads configuration from environment variables with
// sensible defaults. All environment variables use the HERITAGE_
// prefix.
func LoadConfig() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port: getEnvInt("HERITAGE_PORT", 6370),
			Host: getEnv("HERITAGE_HOST", "127.0.0.1"),
		},
		Dataset: DatasetConfig{
			Path:         getEnv("HERITAGE_DATASET", ""),
			ManifestPath: getEnv("HERITAGE_MANIFEST", ""),
			WatchReload:  getEnvBool("HERITAGE_WATCH_RELOAD", true),
		},
		Security: SecurityConfig{
			SecurityMode: getEnv("HERITAGE_SECURITY_MODE", "development"),
			APIToken:     getEnv("HERITAGE_API_TOKEN", ""),
		},
		Limits: LimitsConfig{
			RateLimitPerSec: getEnvFloat("HERITAGE_RATE_LIMIT", 10.0),
			RateLimitBurst:  getEnvInt("HERITAGE_RATE_BURST", 20),
		},
	}, nil
}

// getEnv retrieves a string environment variable or returns a default
// value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a
// default value. An unparseable value falls back to the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns a
// default value. An unparseable value falls back to the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a
// default value. It recognizes "true", "1", "yes" as true and
// "false", "0", "no" as false (case-insensitive).
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch value {
		case "true", "1", "yes", "True", "TRUE", "Yes", "YES":
			return true
		case "false", "0", "no", "False", "FALSE", "No", "NO":
			return false
		}
	}
	return defaultValue
}
