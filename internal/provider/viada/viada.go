// Package viada extracts fuel prices from the Viada price page.
package viada

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eeriks/FuelPriceScraper/internal/fetch"
	"github.com/eeriks/FuelPriceScraper/internal/models"
	"github.com/eeriks/FuelPriceScraper/internal/provider"
)

const (
	// ProviderName is the identifier for this provider.
	ProviderName = "Viada"
	// pageURL is the Viada lowest fuel prices page.
	pageURL = "https://www.viada.lv/zemakas-degvielas-cenas/"
)

var (
	tbodyRe = regexp.MustCompile(`(?s)<tbody>(.*?)</tbody>`)
	rowRe   = regexp.MustCompile(`(?s)<tr>(.*?)</tr>`)
	colRe   = regexp.MustCompile(`(?s)<td>(.*?)</td>`)
	priceRe = regexp.MustCompile(`([\d.,]+) EUR`)
)

// markers maps Viada's fuel identifiers to the tracked fuel kinds.
// The page lists more fuels than the four tracked kinds (LPG, HVO),
// so rows without a marker are skipped rather than treated as errors.
var markers = []struct {
	token string
	kind  models.FuelKind
}{
	{"petrol_95ectoplus_new", models.Petrol95},
	{"petrol_98_new", models.Petrol98},
	{"petrol_d_new", models.Diesel},
	{"petrol_d_ecto_new", models.DieselPremium},
}

// Provider implements the provider interface for Viada.
type Provider struct {
	source fetch.Source
	logger zerolog.Logger
}

// New creates a new Viada provider.
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

// FetchPrices retrieves and parses the Viada price page.
func (p *Provider) FetchPrices(ctx context.Context) (models.PriceRecord, error) {
	body, err := p.source.Fetch(ctx, ProviderName, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching Viada page: %w", err)
	}

	prices, err := Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("parsing Viada page: %w", err)
	}

	p.logger.Debug().
		Str("petrol95", prices[models.Petrol95].String()).
		Str("petrol98", prices[models.Petrol98].String()).
		Str("diesel", prices[models.Diesel].String()).
		Str("dieselPremium", prices[models.DieselPremium].String()).
		Msg("parsed prices")

	return prices, nil
}

// Parse extracts a price record from the Viada page markup.
//
// The price table body holds one row per fuel with the fuel identifier
// in the first column and a "<number> EUR" token in the second. Rows
// for untracked fuels are skipped.
func Parse(html string) (models.PriceRecord, error) {
	tbody := tbodyRe.FindStringSubmatch(html)
	if tbody == nil {
		return nil, fmt.Errorf("fuel price table body not found")
	}

	rows := rowRe.FindAllStringSubmatch(tbody[1], -1)
	if len(rows) < 2 {
		return nil, fmt.Errorf("no fuel rows found in price table")
	}

	prices := models.EmptyPrices()
	for _, row := range rows[1:] {
		cols := colRe.FindAllStringSubmatch(row[1], -1)
		if len(cols) < 2 {
			continue
		}

		kind, ok := classify(cols[0][1])
		if !ok {
			continue
		}

		priceMatch := priceRe.FindStringSubmatch(cols[1][1])
		if priceMatch == nil {
			return nil, fmt.Errorf("no price found in row for %s", kind)
		}

		price, err := provider.ParsePrice(priceMatch[1])
		if err != nil {
			return nil, err
		}
		prices[kind] = price
	}

	return prices, nil
}

func classify(col string) (models.FuelKind, bool) {
	for _, m := range markers {
		if strings.Contains(col, m.token) {
			return m.kind, true
		}
	}
	return "", false
}
