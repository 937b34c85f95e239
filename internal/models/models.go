// Package models provides shared data types for the fuel price scraper.
package models

import (
	"github.com/shopspring/decimal"
)

// FuelKind identifies one of the tracked fuel categories.
type FuelKind string

const (
	// Petrol95 is regular 95-octane petrol.
	Petrol95 FuelKind = "Petrol95"
	// Petrol98 is premium 98-octane petrol.
	Petrol98 FuelKind = "Petrol98"
	// Diesel is regular diesel.
	Diesel FuelKind = "Diesel"
	// DieselPremium is premium diesel.
	DieselPremium FuelKind = "DieselPremium"
)

// FuelKinds lists all tracked fuel kinds in canonical order.
var FuelKinds = []FuelKind{Petrol95, Petrol98, Diesel, DieselPremium}

// PriceRecord maps every fuel kind to a price in EUR per liter.
// A record always carries all four kinds; kinds a provider does not
// publish stay at zero.
type PriceRecord map[FuelKind]decimal.Decimal

// PriceDelta holds the signed per-kind difference between two price
// records (current minus previous).
type PriceDelta map[FuelKind]decimal.Decimal

// EmptyPrices returns a PriceRecord with all fuel kinds set to zero.
func EmptyPrices() PriceRecord {
	prices := make(PriceRecord, len(FuelKinds))
	for _, kind := range FuelKinds {
		prices[kind] = decimal.Zero
	}
	return prices
}

// Clone returns an independent copy of the record.
func (p PriceRecord) Clone() PriceRecord {
	prices := make(PriceRecord, len(FuelKinds))
	for _, kind := range FuelKinds {
		prices[kind] = p[kind]
	}
	return prices
}

// Diff compares two price records and returns the per-kind delta
// (current minus previous). The boolean is true iff any kind changed.
// Comparison is exact; price feeds move in whole-cent increments, so
// no epsilon tolerance is applied.
func Diff(previous, current PriceRecord) (PriceDelta, bool) {
	delta := make(PriceDelta, len(FuelKinds))
	changed := false
	for _, kind := range FuelKinds {
		if current[kind].Equal(previous[kind]) {
			delta[kind] = decimal.Zero
			continue
		}
		delta[kind] = current[kind].Sub(previous[kind])
		changed = true
	}
	return delta, changed
}
