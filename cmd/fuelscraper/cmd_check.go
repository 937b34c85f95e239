package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eeriks/FuelPriceScraper/internal/models"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a one-time price check",
		Long:  "Fetches and parses current prices from the configured providers once, without notifications. Useful for testing parsers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			source := newSource(logger)
			providers := newProviders(source, logger)
			if len(providers) == 0 {
				return fmt.Errorf("no valid providers configured")
			}

			ctx := context.Background()
			failed := 0
			for _, p := range providers {
				prices, err := p.FetchPrices(ctx)
				if err != nil {
					logger.Error().
						Err(err).
						Str("provider", p.Name()).
						Msg("check failed")
					failed++
					continue
				}

				event := logger.Info().Str("provider", p.Name())
				for _, kind := range models.FuelKinds {
					event = event.Str(string(kind), prices[kind].StringFixed(3))
				}
				event.Msg("current prices")
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d providers failed", failed, len(providers))
			}
			return nil
		},
	}

	return cmd
}
