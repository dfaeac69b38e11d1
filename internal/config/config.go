// Package config provides environment-backed configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the settings the serve command needs. DatabaseURL is
// required; the upstream keys are optional and their absence switches the
// corresponding collaborator to its fallback behavior.
type ServerConfig struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string // optional; empty disables the resume assistant
	RapidAPIKey  string // optional; empty switches job search to the demo catalog
	RapidAPIHost string
	ChromePath   string // optional; explicit Chrome binary for PDF export
}

// NewServerConfig reads server configuration from environment variables.
func NewServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:         8080,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		RapidAPIKey:  os.Getenv("RAPIDAPI_KEY"),
		RapidAPIHost: os.Getenv("RAPIDAPI_HOST"),
		ChromePath:   os.Getenv("CHROME_PATH"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if cfg.RapidAPIHost == "" {
		cfg.RapidAPIHost = "jsearch.p.rapidapi.com"
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}
