package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PollIntervalSeconds != 600 {
		t.Errorf("PollIntervalSeconds = %d, want 600", cfg.PollIntervalSeconds)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
	if len(cfg.Providers) != 3 {
		t.Errorf("expected 3 default providers, got %d", len(cfg.Providers))
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHANNEL", "-1001234567890")
	t.Setenv("POLL_INTERVAL", "60")
	t.Setenv("PROVIDERS", "neste, viada")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()

	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.TelegramToken != "123:abc" {
		t.Errorf("TelegramToken = %q", cfg.TelegramToken)
	}
	if cfg.TelegramChannel != -1001234567890 {
		t.Errorf("TelegramChannel = %d", cfg.TelegramChannel)
	}
	if cfg.PollIntervalSeconds != 60 {
		t.Errorf("PollIntervalSeconds = %d, want 60", cfg.PollIntervalSeconds)
	}
	if len(cfg.Providers) != 2 || cfg.Providers[0] != "neste" || cfg.Providers[1] != "viada" {
		t.Errorf("Providers = %v", cfg.Providers)
	}
}

func TestLoadFromEnvInvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_CHANNEL", "not-a-number")
	t.Setenv("POLL_INTERVAL", "-5")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()

	if cfg.TelegramChannel != 0 {
		t.Errorf("TelegramChannel = %d, want 0", cfg.TelegramChannel)
	}
	if cfg.PollIntervalSeconds != 600 {
		t.Errorf("PollIntervalSeconds = %d, want 600", cfg.PollIntervalSeconds)
	}
}

func TestIsTruthy(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"nope", false},
	} {
		if got := isTruthy(tc.in); got != tc.want {
			t.Errorf("isTruthy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
