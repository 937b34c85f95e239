// Package neste extracts fuel prices from the Neste Latvia price page.
package neste

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
	ProviderName = "Neste"
	// pageURL is the Neste fuel price page.
	pageURL = "https://www.neste.lv/lv/content/degvielas-cenas"
)

var (
	tableRe = regexp.MustCompile(`(?s)<table.*</table>`)
	rowRe   = regexp.MustCompile(`(?s)<tr.*?</tr>`)
	colRe   = regexp.MustCompile(`(?s)<p>(.*?)</p>`)
	priceRe = regexp.MustCompile(`<(?:strong|b)>([\d.,]+)</(?:strong|b)>`)
)

// Provider implements the provider interface for Neste.
type Provider struct {
	source fetch.Source
	logger zerolog.Logger
}

// New creates a new Neste provider.
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

// FetchPrices retrieves and parses the Neste price page.
func (p *Provider) FetchPrices(ctx context.Context) (models.PriceRecord, error) {
	body, err := p.source.Fetch(ctx, ProviderName, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching Neste page: %w", err)
	}

	prices, err := Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("parsing Neste page: %w", err)
	}

	p.logger.Debug().
		Str("petrol95", prices[models.Petrol95].String()).
		Str("petrol98", prices[models.Petrol98].String()).
		Str("diesel", prices[models.Diesel].String()).
		Str("dieselPremium", prices[models.DieselPremium].String()).
		Msg("parsed prices")

	return prices, nil
}

// Parse extracts a price record from the Neste page markup.
//
// The page carries a single table with a header row followed by four
// fuel rows. Each row holds two <p> columns: the fuel name and the
// price, with the numeric value wrapped in <strong> or <b>. The table
// layout is fixed, so a row that matches no known fuel means the site
// changed and parsing fails loudly.
func Parse(html string) (models.PriceRecord, error) {
	table := tableRe.FindString(html)
	if table == "" {
		return nil, fmt.Errorf("fuel price table not found")
	}

	rows := rowRe.FindAllString(table, -1)
	if len(rows) < 5 {
		return nil, fmt.Errorf("expected at least 5 table rows, found %d", len(rows))
	}

	prices := models.EmptyPrices()
	for _, row := range rows[1:5] {
		cols := colRe.FindAllStringSubmatch(row, -1)
		if len(cols) < 2 {
			return nil, fmt.Errorf("expected 2 columns in row %q", row)
		}

		name := cols[0][1]
		priceMatch := priceRe.FindStringSubmatch(cols[1][1])
		if priceMatch == nil {
			return nil, fmt.Errorf("no price found in row for %q", name)
		}

		price, err := provider.ParsePrice(priceMatch[1])
		if err != nil {
			return nil, err
		}

		switch {
		case strings.Contains(name, "95"):
			prices[models.Petrol95] = price
		case strings.Contains(name, "Neste Futura 98"):
			prices[models.Petrol98] = price
		case strings.Contains(name, "Neste Futura D"):
			prices[models.Diesel] = price
		case strings.Contains(name, "Neste Pro Diesel"):
			prices[models.DieselPremium] = price
		default:
			return nil, fmt.Errorf("unrecognized fuel row %q", name)
		}
	}

	return prices, nil
}
