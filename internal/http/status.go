package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/eeriks/FuelPriceScraper/internal/models"
	"github.com/eeriks/FuelPriceScraper/internal/monitor"
)

// StatusHandler handles the /status endpoint.
type StatusHandler struct {
	monitor   *monitor.Monitor
	startTime time.Time
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(m *monitor.Monitor) *StatusHandler {
	return &StatusHandler{
		monitor:   m,
		startTime: time.Now(),
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := models.StatusResponse{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Providers:     make(map[string]models.ProviderStatus),
	}

	response.MonitorRunning = h.monitor.IsRunning()
	response.LastCheckAt = h.monitor.LastCheckAt()
	nextCheck := h.monitor.NextCheckAt()
	if !nextCheck.IsZero() {
		response.NextCheckAt = &nextCheck
	}

	for _, p := range h.monitor.Providers() {
		stats := h.monitor.GetStats(p.Name())
		if stats == nil {
			continue
		}
		snapshot := stats.GetSnapshot()

		prices := make(map[string]string, len(models.FuelKinds))
		if last := h.monitor.LastPrices(p.Name()); last != nil {
			for _, kind := range models.FuelKinds {
				prices[string(kind)] = last[kind].StringFixed(3)
			}
		}

		response.Providers[p.Name()] = models.ProviderStatus{
			URL:                p.URL(),
			LastCheckAt:        snapshot.LastCheckAt,
			LastCheckSuccess:   snapshot.LastCheckSuccess,
			LastResponseTimeMs: snapshot.LastResponseTime.Milliseconds(),
			LastChangeAt:       snapshot.LastChangeAt,
			LastError:          snapshot.LastError,
			TotalChecks:        snapshot.TotalChecks,
			TotalErrors:        snapshot.TotalErrors,
			Prices:             prices,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
}
