// Package metrics provides Prometheus metrics for the fuel price scraper.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the scraper.
type Metrics struct {
	// Fetch metrics
	FetchesTotal  *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec

	// Price metrics
	FuelPriceEUR      *prometheus.GaugeVec
	PriceChangesTotal *prometheus.CounterVec

	// Delivery metrics
	NotificationsTotal *prometheus.CounterVec

	// Loop metrics
	LastCheckTimestamp *prometheus.GaugeVec
}

// New creates and registers Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		FetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuelscraper_fetches_total",
				Help: "Total number of provider page fetches by provider and status",
			},
			[]string{"provider", "status"},
		),
		FetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fuelscraper_fetch_duration_seconds",
				Help:    "Provider page fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		FuelPriceEUR: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fuelscraper_fuel_price_eur",
				Help: "Current fuel price in EUR per liter",
			},
			[]string{"provider", "fuel"},
		),
		PriceChangesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuelscraper_price_changes_total",
				Help: "Total number of detected price changes by provider and fuel",
			},
			[]string{"provider", "fuel"},
		),
		NotificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuelscraper_notifications_total",
				Help: "Total number of notification deliveries by status",
			},
			[]string{"status"},
		),
		LastCheckTimestamp: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fuelscraper_last_check_timestamp",
				Help: "Timestamp of the last successful check",
			},
			[]string{"provider"},
		),
	}
}

// RecordFetch records a provider fetch attempt.
func (m *Metrics) RecordFetch(provider, status string, duration float64) {
	m.FetchesTotal.WithLabelValues(provider, status).Inc()
	m.FetchDuration.WithLabelValues(provider).Observe(duration)
}

// RecordPrice records the current price for a provider and fuel.
func (m *Metrics) RecordPrice(provider, fuel string, price float64) {
	m.FuelPriceEUR.WithLabelValues(provider, fuel).Set(price)
}

// RecordPriceChange records a detected price change.
func (m *Metrics) RecordPriceChange(provider, fuel string) {
	m.PriceChangesTotal.WithLabelValues(provider, fuel).Inc()
}

// RecordNotification records a notification delivery attempt.
func (m *Metrics) RecordNotification(status string) {
	m.NotificationsTotal.WithLabelValues(status).Inc()
}

// RecordLastCheck records the last successful check timestamp.
func (m *Metrics) RecordLastCheck(provider string, timestamp float64) {
	m.LastCheckTimestamp.WithLabelValues(provider).Set(timestamp)
}
