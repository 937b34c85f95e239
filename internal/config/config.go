// Package config provides configuration structures and loading for the fuel price scraper.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the fuel price scraper.
type Config struct {
	// Debug enables the local file-replay cache for fetched pages
	Debug bool
	// Telegram bot token; when empty, notifications go to the log
	TelegramToken string
	// Telegram destination chat identifier
	TelegramChannel int64
	// Seconds between monitoring passes
	PollIntervalSeconds int
	// Directory for debug page cache files
	CacheDir string
	// Log level (debug, info, warn, error)
	LogLevel string
	// Log format (json, console)
	LogFormat string
	// HTTP server address
	HTTPAddr string
	// Enabled providers
	Providers []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Debug:               false,
		TelegramToken:       "",
		TelegramChannel:     0,
		PollIntervalSeconds: 600,
		CacheDir:            ".",
		LogLevel:            "info",
		LogFormat:           "json",
		HTTPAddr:            ":8080",
		Providers:           []string{"neste", "virsi", "viada"},
	}
}

// LoadFromEnv loads configuration from environment variables.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("DEBUG"); v != "" {
		c.Debug = isTruthy(v)
	}
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		c.TelegramToken = v
	}
	if v := os.Getenv("TELEGRAM_CHANNEL"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.TelegramChannel = i
		}
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			c.PollIntervalSeconds = i
		}
	}
	if v := os.Getenv("CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("PROVIDERS"); v != "" {
		providers := strings.Split(v, ",")
		for i := range providers {
			providers[i] = strings.TrimSpace(providers[i])
		}
		c.Providers = providers
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
