package neste

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eeriks/FuelPriceScraper/internal/models"
)

// Sample markup based on https://www.neste.lv/lv/content/degvielas-cenas
const samplePage = `
<html>
<body>
<div class="content">
<table class="fuel-prices">
<tr><th><p>Degviela</p></th><th><p>Cena</p></th></tr>
<tr><td><p>Neste Futura 95</p></td><td><p><strong>1.509</strong> EUR/l</p></td></tr>
<tr><td><p>Neste Futura 98</p></td><td><p><strong>1.709</strong> EUR/l</p></td></tr>
<tr><td><p>Neste Futura D</p></td><td><p><b>1.409</b> EUR/l</p></td></tr>
<tr><td><p>Neste Pro Diesel</p></td><td><p><strong>1.459</strong> EUR/l</p></td></tr>
</table>
</div>
</body>
</html>
`

func TestParse(t *testing.T) {
	prices, err := Parse(samplePage)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := map[models.FuelKind]string{
		models.Petrol95:      "1.509",
		models.Petrol98:      "1.709",
		models.Diesel:        "1.409",
		models.DieselPremium: "1.459",
	}
	for kind, expected := range want {
		if got := prices[kind].String(); got != expected {
			t.Errorf("%s = %s, want %s", kind, got, expected)
		}
	}
}

func TestParseCommaDecimalSeparator(t *testing.T) {
	page := strings.ReplaceAll(samplePage, "1.509", "1,509")
	prices, err := Parse(page)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := prices[models.Petrol95].String(); got != "1.509" {
		t.Errorf("Petrol95 = %s, want 1.509", got)
	}
}

func TestParseMissingTable(t *testing.T) {
	if _, err := Parse("<html><body>no prices today</body></html>"); err == nil {
		t.Fatal("expected an error for markup without a table")
	}
}

func TestParseUnrecognizedRow(t *testing.T) {
	page := strings.ReplaceAll(samplePage, "Neste Pro Diesel", "Neste HVO100")
	if _, err := Parse(page); err == nil {
		t.Fatal("expected an error for an unrecognized fuel row")
	}
}

func TestParseMissingPrice(t *testing.T) {
	page := strings.ReplaceAll(samplePage, "<strong>1.709</strong>", "1.709")
	if _, err := Parse(page); err == nil {
		t.Fatal("expected an error for a row without an emphasized price")
	}
}

func TestProviderIdentity(t *testing.T) {
	p := New(nil, zerolog.Nop())
	if p.Name() != "Neste" {
		t.Errorf("Name() = %q, want Neste", p.Name())
	}
	if !strings.Contains(p.URL(), "neste.lv") {
		t.Errorf("unexpected URL %q", p.URL())
	}
}
