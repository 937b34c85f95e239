// Package notify provides delivery of price change notifications.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/eeriks/FuelPriceScraper/internal/models"
)

// Notifier delivers a price change report for one provider.
type Notifier interface {
	Notify(ctx context.Context, providerName string, current models.PriceRecord, delta models.PriceDelta) error
}

// FormatMessage renders a price change report. Only changed fuel kinds
// appear, each as "<kind>: <signed delta>€/L (<current price> €/L)",
// joined by commas and prefixed with the provider name.
func FormatMessage(providerName string, current models.PriceRecord, delta models.PriceDelta) string {
	changes := make([]string, 0, len(models.FuelKinds))
	for _, kind := range models.FuelKinds {
		d := delta[kind]
		if d.IsZero() {
			continue
		}
		sign := "+"
		if d.IsNegative() {
			sign = ""
		}
		changes = append(changes, fmt.Sprintf("%s: %s%s€/L (%s €/L)",
			kind, sign, d.StringFixed(3), current[kind].StringFixed(3)))
	}
	return fmt.Sprintf("[%s] Price update: %s", providerName, strings.Join(changes, ", "))
}
