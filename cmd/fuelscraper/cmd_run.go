package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eeriks/FuelPriceScraper/internal/http"
	"github.com/eeriks/FuelPriceScraper/internal/metrics"
	"github.com/eeriks/FuelPriceScraper/internal/monitor"
	"github.com/eeriks/FuelPriceScraper/internal/notify"
)

func runCmd() *cobra.Command {
	var intervalSeconds int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the continuous price monitor",
		Long:  "Starts the fuel price monitor, checking all providers at a fixed interval and announcing price changes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			if intervalSeconds <= 0 {
				intervalSeconds = cfg.PollIntervalSeconds
			}
			interval := time.Duration(intervalSeconds) * time.Second

			logger.Info().
				Str("version", Version).
				Str("commit", Commit).
				Str("buildDate", BuildDate).
				Str("httpAddr", cfg.HTTPAddr).
				Dur("interval", interval).
				Strs("providers", cfg.Providers).
				Bool("debug", cfg.Debug).
				Msg("starting fuel price scraper")

			// Pick the notifier
			var notifier notify.Notifier
			if cfg.TelegramToken != "" {
				notifier = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChannel, logger)
			} else {
				logger.Warn().Msg("TELEGRAM_TOKEN not set, price changes go to the log only")
				notifier = notify.NewLog(logger)
			}

			// Create monitor
			m := monitor.New(notifier, interval, logger)
			m.SetPrometheusMetrics(metrics.New())

			// Register providers
			source := newSource(logger)
			providers := newProviders(source, logger)
			if len(providers) == 0 {
				return fmt.Errorf("no valid providers configured")
			}
			for _, p := range providers {
				m.RegisterProvider(p)
			}

			// Create HTTP server
			httpServer := http.NewServer(cfg.HTTPAddr, m, logger)

			// Setup signal handling
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			// Start HTTP server in goroutine
			go func() {
				if err := httpServer.Start(); err != nil {
					logger.Error().Err(err).Msg("HTTP server error")
					cancel()
				}
			}()

			// Start monitor in goroutine
			go func() {
				if err := m.Start(ctx); err != nil && err != context.Canceled {
					logger.Error().Err(err).Msg("monitor error")
					cancel()
				}
			}()

			// Wait for signal
			select {
			case sig := <-sigCh:
				logger.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
			case <-ctx.Done():
			}

			// Graceful shutdown
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("HTTP server shutdown error")
			}

			logger.Info().Msg("shutdown complete")
			return nil
		},
	}

	cmd.Flags().IntVar(&intervalSeconds, "interval", 0, "Seconds between monitoring passes (default from POLL_INTERVAL or 600)")

	return cmd
}
