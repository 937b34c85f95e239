// Package monitor drives the fetch-parse-diff-notify loop over all providers.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/eeriks/FuelPriceScraper/internal/metrics"
	"github.com/eeriks/FuelPriceScraper/internal/models"
	"github.com/eeriks/FuelPriceScraper/internal/notify"
	"github.com/eeriks/FuelPriceScraper/internal/provider"
)

// Stats holds check statistics for a provider.
type Stats struct {
	mu               sync.RWMutex
	TotalChecks      int64
	TotalErrors      int64
	LastCheckAt      *time.Time
	LastCheckSuccess bool
	LastResponseTime time.Duration
	LastError        *string
	LastChangeAt     *time.Time
}

// GetSnapshot returns a thread-safe snapshot of the stats.
func (s *Stats) GetSnapshot() StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StatsSnapshot{
		TotalChecks:      s.TotalChecks,
		TotalErrors:      s.TotalErrors,
		LastCheckAt:      s.LastCheckAt,
		LastCheckSuccess: s.LastCheckSuccess,
		LastResponseTime: s.LastResponseTime,
		LastError:        s.LastError,
		LastChangeAt:     s.LastChangeAt,
	}
}

// StatsSnapshot is a thread-safe copy of Stats data.
type StatsSnapshot struct {
	TotalChecks      int64
	TotalErrors      int64
	LastCheckAt      *time.Time
	LastCheckSuccess bool
	LastResponseTime time.Duration
	LastError        *string
	LastChangeAt     *time.Time
}

// providerState tracks the last-known prices for one provider.
type providerState struct {
	provider provider.Provider
	prices   models.PriceRecord
	seeded   bool
	stats    *Stats
}

// Monitor owns the registered providers and their last-known price
// records, and drives the periodic check loop.
type Monitor struct {
	notifier notify.Notifier
	interval time.Duration
	logger   zerolog.Logger
	prom     *metrics.Metrics

	mu          sync.RWMutex
	order       []string
	states      map[string]*providerState
	running     bool
	lastCheckAt *time.Time
	nextCheckAt time.Time
}

// New creates a new Monitor checking providers at the given interval.
func New(notifier notify.Notifier, interval time.Duration, logger zerolog.Logger) *Monitor {
	return &Monitor{
		notifier: notifier,
		interval: interval,
		states:   make(map[string]*providerState),
		logger:   logger.With().Str("component", "monitor").Logger(),
	}
}

// SetPrometheusMetrics wires Prometheus metrics into the monitor.
func (m *Monitor) SetPrometheusMetrics(prom *metrics.Metrics) {
	m.prom = prom
}

// RegisterProvider registers a provider with a zeroed price record.
// Providers are checked in registration order.
func (m *Monitor) RegisterProvider(p provider.Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = append(m.order, p.Name())
	m.states[p.Name()] = &providerState{
		provider: p,
		prices:   models.EmptyPrices(),
		stats:    &Stats{},
	}
}

// Providers returns all registered providers in check order.
func (m *Monitor) Providers() []provider.Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	providers := make([]provider.Provider, 0, len(m.order))
	for _, name := range m.order {
		providers = append(providers, m.states[name].provider)
	}
	return providers
}

// GetStats returns the stats for a provider, or nil if unknown.
func (m *Monitor) GetStats(providerName string) *Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if st, ok := m.states[providerName]; ok {
		return st.stats
	}
	return nil
}

// LastPrices returns a copy of the last-known prices for a provider.
func (m *Monitor) LastPrices(providerName string) models.PriceRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if st, ok := m.states[providerName]; ok {
		return st.prices.Clone()
	}
	return nil
}

// CheckAll checks all registered providers in order. A failing
// provider is logged and does not prevent the remaining providers
// from being checked.
func (m *Monitor) CheckAll(ctx context.Context) {
	m.mu.RLock()
	order := make([]string, len(m.order))
	copy(order, m.order)
	m.mu.RUnlock()

	for _, name := range order {
		if err := m.CheckProvider(ctx, name); err != nil {
			m.logger.Error().
				Err(err).
				Str("provider", name).
				Msg("provider check failed")
		}
	}
}

// CheckProvider fetches current prices from one provider, diffs them
// against the last-known record, and notifies on change. The first
// successful check seeds the record and unconditionally reports all
// current prices against the zero baseline.
func (m *Monitor) CheckProvider(ctx context.Context, providerName string) error {
	m.mu.RLock()
	st, ok := m.states[providerName]
	m.mu.RUnlock()

	if !ok {
		m.logger.Warn().Str("provider", providerName).Msg("provider not found")
		return nil
	}

	m.logger.Info().Str("provider", providerName).Msg("checking provider")

	start := time.Now()
	st.stats.mu.Lock()
	st.stats.TotalChecks++
	st.stats.mu.Unlock()

	prices, err := st.provider.FetchPrices(ctx)
	duration := time.Since(start)

	now := time.Now()
	st.stats.mu.Lock()
	st.stats.LastCheckAt = &now
	st.stats.LastResponseTime = duration
	if err != nil {
		st.stats.TotalErrors++
		st.stats.LastCheckSuccess = false
		errStr := err.Error()
		st.stats.LastError = &errStr
	} else {
		st.stats.LastCheckSuccess = true
		st.stats.LastError = nil
	}
	st.stats.mu.Unlock()

	if m.prom != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.prom.RecordFetch(providerName, status, duration.Seconds())
	}

	if err != nil {
		return fmt.Errorf("fetching prices: %w", err)
	}

	m.mu.Lock()
	previous := st.prices
	seeded := st.seeded
	st.prices = prices.Clone()
	st.seeded = true
	m.mu.Unlock()

	if m.prom != nil {
		for _, kind := range models.FuelKinds {
			m.prom.RecordPrice(providerName, string(kind), prices[kind].InexactFloat64())
		}
		m.prom.RecordLastCheck(providerName, float64(now.Unix()))
	}

	if !seeded {
		// Startup snapshot: announce all current prices as changes
		// from the zero baseline.
		delta, _ := models.Diff(models.EmptyPrices(), prices)
		m.logger.Info().
			Str("provider", providerName).
			Dur("duration", duration).
			Msg("seeded initial prices")
		return m.deliver(ctx, providerName, prices, delta)
	}

	delta, changed := models.Diff(previous, prices)
	if !changed {
		m.logger.Debug().
			Str("provider", providerName).
			Dur("duration", duration).
			Msg("prices unchanged")
		return nil
	}

	st.stats.mu.Lock()
	st.stats.LastChangeAt = &now
	st.stats.mu.Unlock()

	if m.prom != nil {
		for _, kind := range models.FuelKinds {
			if !delta[kind].IsZero() {
				m.prom.RecordPriceChange(providerName, string(kind))
			}
		}
	}

	m.logger.Info().
		Str("provider", providerName).
		Dur("duration", duration).
		Msg("price change detected")

	return m.deliver(ctx, providerName, prices, delta)
}

func (m *Monitor) deliver(ctx context.Context, providerName string, prices models.PriceRecord, delta models.PriceDelta) error {
	err := m.notifier.Notify(ctx, providerName, prices, delta)
	if m.prom != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.prom.RecordNotification(status)
	}
	if err != nil {
		return fmt.Errorf("delivering notification: %w", err)
	}
	return nil
}

// Start runs an immediate pass over all providers, then repeats at the
// configured interval until the context is cancelled.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	m.running = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
	}()

	m.logger.Info().
		Dur("interval", m.interval).
		Int("providers", len(m.Providers())).
		Msg("starting monitor")

	m.runPass(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("monitor stopped")
			return ctx.Err()
		case <-ticker.C:
			m.runPass(ctx)
		}
	}
}

func (m *Monitor) runPass(ctx context.Context) {
	now := time.Now()
	m.mu.Lock()
	m.lastCheckAt = &now
	m.nextCheckAt = now.Add(m.interval)
	m.mu.Unlock()

	m.CheckAll(ctx)
}

// NextCheckAt returns the time of the next scheduled pass.
func (m *Monitor) NextCheckAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.nextCheckAt
}

// LastCheckAt returns the time the last pass started.
func (m *Monitor) LastCheckAt() *time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastCheckAt
}

// IsRunning returns whether the monitor loop is currently running.
func (m *Monitor) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}
