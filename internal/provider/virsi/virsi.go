// Package virsi extracts fuel prices from the Virši price page.
package virsi

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/eeriks/FuelPriceScraper/internal/fetch"
	"github.com/eeriks/FuelPriceScraper/internal/models"
	"github.com/eeriks/FuelPriceScraper/internal/provider"
)

const (
	// ProviderName is the identifier for this provider.
	ProviderName = "Virsi"
	// pageURL is the Virši fuel price page.
	pageURL = "https://www.virsi.lv/lv/degvielas-cena"
)

// Each fuel price sits in its own "price-item" block, identified by a
// type marker class with the numeric value in a nearby price element.
var (
	dieselRe  = regexp.MustCompile(`(?s)price-item type-dd.*?<p class="price">([\d.,]+)</p>`)
	petrolRe  = regexp.MustCompile(`(?s)price-item type-95e.*?<p class="price">([\d.,]+)</p>`)
	premiumRe = regexp.MustCompile(`(?s)price-item type-98e.*?<p class="price">([\d.,]+)</p>`)
)

// Provider implements the provider interface for Virši.
type Provider struct {
	source fetch.Source
	logger zerolog.Logger
}

// New creates a new Virši provider.
func New(source fetch.Source, logger zerolog.Logger) *Provider {
	return &Provider{
		source: source,
		logger: logger.With().Str("provider", ProviderName).Logger(),
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// URL returns the source page URL.
func (p *Provider) URL() string {
	return pageURL
}

// FetchPrices retrieves and parses the Virši price page.
func (p *Provider) FetchPrices(ctx context.Context) (models.PriceRecord, error) {
	body, err := p.source.Fetch(ctx, ProviderName, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching Virši page: %w", err)
	}

	prices, err := Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("parsing Virši page: %w", err)
	}

	p.logger.Debug().
		Str("petrol95", prices[models.Petrol95].String()).
		Str("petrol98", prices[models.Petrol98].String()).
		Str("diesel", prices[models.Diesel].String()).
		Msg("parsed prices")

	return prices, nil
}

// Parse extracts a price record from the Virši page markup using three
// independent anchored searches. Virši does not publish a premium
// diesel price, so DieselPremium is always zero.
func Parse(html string) (models.PriceRecord, error) {
	prices := models.EmptyPrices()

	for _, target := range []struct {
		kind models.FuelKind
		re   *regexp.Regexp
	}{
		{models.Petrol95, petrolRe},
		{models.Petrol98, premiumRe},
		{models.Diesel, dieselRe},
	} {
		match := target.re.FindStringSubmatch(html)
		if match == nil {
			return nil, fmt.Errorf("price block for %s not found", target.kind)
		}
		price, err := provider.ParsePrice(match[1])
		if err != nil {
			return nil, err
		}
		prices[target.kind] = price
	}

	return prices, nil
}
