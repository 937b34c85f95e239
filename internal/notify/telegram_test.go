package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/eeriks/FuelPriceScraper/internal/models"
)

func testRecord(p95, p98, d, dp string) models.PriceRecord {
	return models.PriceRecord{
		models.Petrol95:      decimal.RequireFromString(p95),
		models.Petrol98:      decimal.RequireFromString(p98),
		models.Diesel:        decimal.RequireFromString(d),
		models.DieselPremium: decimal.RequireFromString(dp),
	}
}

func TestFormatMessageOnlyChangedKinds(t *testing.T) {
	current := testRecord("1.50", "1.70", "1.42", "1.45")
	delta := models.PriceDelta{
		models.Petrol95:      decimal.Zero,
		models.Petrol98:      decimal.Zero,
		models.Diesel:        decimal.RequireFromString("0.02"),
		models.DieselPremium: decimal.Zero,
	}

	got := FormatMessage("Neste", current, delta)
	want := "[Neste] Price update: Diesel: +0.020€/L (1.420 €/L)"
	if got != want {
		t.Errorf("FormatMessage = %q, want %q", got, want)
	}
}

func TestFormatMessageNegativeDelta(t *testing.T) {
	current := testRecord("1.48", "1.70", "1.40", "1.45")
	delta := models.PriceDelta{
		models.Petrol95:      decimal.RequireFromString("-0.02"),
		models.Petrol98:      decimal.Zero,
		models.Diesel:        decimal.Zero,
		models.DieselPremium: decimal.Zero,
	}

	got := FormatMessage("Viada", current, delta)
	want := "[Viada] Price update: Petrol95: -0.020€/L (1.480 €/L)"
	if got != want {
		t.Errorf("FormatMessage = %q, want %q", got, want)
	}
}

func TestFormatMessageMultipleChanges(t *testing.T) {
	current := testRecord("1.50", "1.70", "1.40", "1.45")
	delta, changed := models.Diff(models.EmptyPrices(), current)
	if !changed {
		t.Fatal("expected a change against the zero baseline")
	}

	got := FormatMessage("Neste", current, delta)
	want := "[Neste] Price update: Petrol95: +1.500€/L (1.500 €/L), " +
		"Petrol98: +1.700€/L (1.700 €/L), Diesel: +1.400€/L (1.400 €/L), " +
		"DieselPremium: +1.450€/L (1.450 €/L)"
	if got != want {
		t.Errorf("FormatMessage = %q, want %q", got, want)
	}
}

func TestTelegramNotify(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tg := NewTelegram("test-token", 123456, zerolog.Nop())
	tg.baseURL = srv.URL

	current := testRecord("1.50", "1.70", "1.42", "1.45")
	delta := models.PriceDelta{
		models.Petrol95:      decimal.Zero,
		models.Petrol98:      decimal.Zero,
		models.Diesel:        decimal.RequireFromString("0.02"),
		models.DieselPremium: decimal.Zero,
	}

	if err := tg.Notify(context.Background(), "Neste", current, delta); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	if gotPath != "/bottest-token/sendMessage" {
		t.Errorf("request path = %q, want /bottest-token/sendMessage", gotPath)
	}
	if gotBody.ChatID != 123456 {
		t.Errorf("chat_id = %d, want 123456", gotBody.ChatID)
	}
	if gotBody.ParseMode != "Markdown" {
		t.Errorf("parse_mode = %q, want Markdown", gotBody.ParseMode)
	}
	if gotBody.Text != "[Neste] Price update: Diesel: +0.020€/L (1.420 €/L)" {
		t.Errorf("unexpected message text: %q", gotBody.Text)
	}
}

func TestTelegramNotifyAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	tg := NewTelegram("bad-token", 123456, zerolog.Nop())
	tg.baseURL = srv.URL

	current := testRecord("1.50", "1.70", "1.40", "1.45")
	delta, _ := models.Diff(models.EmptyPrices(), current)

	if err := tg.Notify(context.Background(), "Neste", current, delta); err == nil {
		t.Fatal("expected an error for a non-200 API response")
	}
}

func TestLogNotifier(t *testing.T) {
	l := NewLog(zerolog.Nop())
	current := testRecord("1.50", "1.70", "1.40", "1.45")
	delta, _ := models.Diff(models.EmptyPrices(), current)

	if err := l.Notify(context.Background(), "Virsi", current, delta); err != nil {
		t.Errorf("log notifier returned error: %v", err)
	}
}
