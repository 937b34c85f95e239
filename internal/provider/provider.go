// Package provider defines the interface for fuel price providers.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eeriks/FuelPriceScraper/internal/models"
)

// Provider is a fuel price publishing source monitored by the system.
type Provider interface {
	// Name returns the provider identifier. It is also used as the
	// file-replay cache key.
	Name() string

	// URL returns the source page URL.
	URL() string

	// FetchPrices retrieves the provider page and extracts the current
	// price record. Kinds the provider does not publish are zero.
	FetchPrices(ctx context.Context) (models.PriceRecord, error)
}

// ParsePrice converts a scraped price token to a decimal. Both comma
// and point are accepted as the decimal separator; the provider sites
// are not consistent about locale formatting.
func ParsePrice(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	price, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing price %q: %w", raw, err)
	}
	return price, nil
}
