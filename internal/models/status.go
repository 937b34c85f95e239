package models

import (
	"time"
)

// ProviderStatus holds the operational status of a provider.
type ProviderStatus struct {
	URL                string            `json:"url"`
	LastCheckAt        *time.Time        `json:"last_check_at"`
	LastCheckSuccess   bool              `json:"last_check_success"`
	LastResponseTimeMs int64             `json:"last_response_time_ms"`
	LastChangeAt       *time.Time        `json:"last_change_at,omitempty"`
	LastError          *string           `json:"last_error"`
	TotalChecks        int64             `json:"total_checks"`
	TotalErrors        int64             `json:"total_errors"`
	Prices             map[string]string `json:"prices"`
}

// StatusResponse is the response for the /status endpoint.
type StatusResponse struct {
	Status         string                    `json:"status"`
	UptimeSeconds  int64                     `json:"uptime_seconds"`
	MonitorRunning bool                      `json:"monitor_running"`
	NextCheckAt    *time.Time                `json:"next_check_at,omitempty"`
	LastCheckAt    *time.Time                `json:"last_check_at,omitempty"`
	Providers      map[string]ProviderStatus `json:"providers"`
}
