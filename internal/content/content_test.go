package content_test

import (
	"testing"

	"github.com/theimpacts/impacts/internal/content"
	"github.com/theimpacts/impacts/internal/form"
)

func TestLoad_Embedded(t *testing.T) {
	site, legal, err := content.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(site.Services) != 3 {
		t.Errorf("services = %d, want 3", len(site.Services))
	}
	if len(site.Pricing.Plans) != 3 {
		t.Errorf("plans = %d, want 3", len(site.Pricing.Plans))
	}
	if len(site.Portfolio) != 6 {
		t.Errorf("portfolio = %d, want 6", len(site.Portfolio))
	}
	if legal.Privacy.Title == "" || len(legal.Terms.Sections) == 0 {
		t.Error("legal documents not loaded")
	}
	for _, s := range site.Services {
		if !form.IsService(s.ID) {
			t.Errorf("service %q is not a contact form option", s.ID)
		}
	}
}

func TestPortfolioFor(t *testing.T) {
	site, _, err := content.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tests := []struct {
		category string
		want     int
	}{
		{"all", 6},
		{"", 6},
		{"bogus", 6},
		{"seo", 2},
		{"META", 2},
		{"social", 2},
	}
	for _, tt := range tests {
		got := site.PortfolioFor(tt.category)
		if len(got) != tt.want {
			t.Errorf("PortfolioFor(%q) = %d projects, want %d", tt.category, len(got), tt.want)
		}
	}
	for _, p := range site.PortfolioFor("meta") {
		if p.Category != "meta" {
			t.Errorf("project %q has category %q", p.Title, p.Category)
		}
	}
}

func TestPlanPrice(t *testing.T) {
	p := content.Plan{Monthly: 2499, Yearly: 2199}
	if got := p.PriceLabel(content.ParseBilling("yearly")); got != "$2,199" {
		t.Errorf("yearly label = %q", got)
	}
	if got := p.PriceLabel(content.ParseBilling("")); got != "$2,499" {
		t.Errorf("default label = %q", got)
	}
	if content.ParseBilling("Yearly") != content.Yearly {
		t.Error("billing should parse case-insensitively")
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	if _, err := content.Parse([]byte("servicez: []\n")); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := content.Parse([]byte("services: []\n")); err == nil {
		t.Error("expected error for empty services")
	}
}
