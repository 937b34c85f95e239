// Package main provides the entry point for the fuel price scraper CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eeriks/FuelPriceScraper/internal/config"
	"github.com/eeriks/FuelPriceScraper/internal/fetch"
	"github.com/eeriks/FuelPriceScraper/internal/provider"
	"github.com/eeriks/FuelPriceScraper/internal/provider/neste"
	"github.com/eeriks/FuelPriceScraper/internal/provider/viada"
	"github.com/eeriks/FuelPriceScraper/internal/provider/virsi"
)

var (
	// Version is set at build time.
	Version = "dev"
	// Commit is set at build time.
	Commit = "none"
	// BuildDate is set at build time.
	BuildDate = "unknown"
)

var cfg *config.Config

func main() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	rootCmd := &cobra.Command{
		Use:   "fuelscraper",
		Short: "Fuel Price Scraper - Watch Latvian fuel prices so you don't have to",
		Long: `Fuel Price Scraper is a service that monitors fuel prices published by
Latvian fuel providers (Neste, Virši, Viada), detects changes against the
last observed prices, and announces them to a Telegram channel.

Features:
  - Three provider page parsers with provider-specific extraction rules
  - Change detection with exact decimal arithmetic
  - Telegram notifications (log-only fallback without a token)
  - Debug file-replay cache to avoid hammering the provider sites
  - Prometheus metrics and status endpoint`,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "Serve pages from the local file cache, fetching once")
	rootCmd.PersistentFlags().StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "Directory for debug page cache files")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address for /metrics, /status")
	rootCmd.PersistentFlags().StringSliceVar(&cfg.Providers, "providers", cfg.Providers, "Providers to monitor")

	// Add subcommands
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger() zerolog.Logger {
	var logger zerolog.Logger

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set log format
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	return logger
}

// newSource builds the content source: live HTTP, wrapped in the
// file-replay cache when debug mode is on.
func newSource(logger zerolog.Logger) fetch.Source {
	var source fetch.Source = fetch.NewHTTPSource(logger)
	if cfg.Debug {
		logger.Warn().
			Str("cacheDir", cfg.CacheDir).
			Msg("debug mode: pages served from file cache once fetched")
		source = fetch.NewFileCacheSource(source, cfg.CacheDir, logger)
	}
	return source
}

// newProviders builds the configured provider instances.
func newProviders(source fetch.Source, logger zerolog.Logger) []provider.Provider {
	providers := make([]provider.Provider, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		switch name {
		case "neste":
			providers = append(providers, neste.New(source, logger))
		case "virsi":
			providers = append(providers, virsi.New(source, logger))
		case "viada":
			providers = append(providers, viada.New(source, logger))
		default:
			logger.Warn().Str("provider", name).Msg("unknown provider, skipping")
		}
	}
	return providers
}
