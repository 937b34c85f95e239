package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eeriks/FuelPriceScraper/internal/models"
)

// Log writes price change reports to the log instead of a chat
// channel. Used when no Telegram token is configured.
type Log struct {
	logger zerolog.Logger
}

// NewLog creates a log-only notifier.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{
		logger: logger.With().Str("component", "notify").Logger(),
	}
}

// Notify logs the formatted price change report.
func (l *Log) Notify(ctx context.Context, providerName string, current models.PriceRecord, delta models.PriceDelta) error {
	l.logger.Info().
		Str("provider", providerName).
		Str("message", FormatMessage(providerName, current, delta)).
		Msg("price change")
	return nil
}
