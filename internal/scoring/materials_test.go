package scoring_test

import (
	"testing"

	"github.com/myrjola/sustainscore/internal/scoring"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMaterials(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name               string
		entries            []scoring.MaterialEntry
		wantImpact         int
		wantRate           string
		wantQuantity       int
		wantPlastic        int
		wantDefaultedNames []string
	}{
		{
			name:         "no materials is fully recyclable",
			entries:      nil,
			wantImpact:   0,
			wantRate:     "100",
			wantQuantity: 0,
		},
		{
			name: "only zero quantities is fully recyclable",
			entries: []scoring.MaterialEntry{
				{Name: "Plastic Tote Bags", Quantity: 0},
				{Name: "Flyers", Quantity: -10},
			},
			wantImpact:   0,
			wantRate:     "100",
			wantQuantity: 0,
		},
		{
			name: "brochures",
			entries: []scoring.MaterialEntry{
				{Name: "Brochures", Quantity: 2000},
			},
			wantImpact:   60,
			wantRate:     "100",
			wantQuantity: 2000,
		},
		{
			name: "small batches carry no impact",
			entries: []scoring.MaterialEntry{
				{Name: "Plastic Tote Bags", Quantity: 99},
				{Name: "Metal Badges", Quantity: 201},
			},
			wantImpact:   10,
			wantRate:     "67",
			wantQuantity: 300,
			wantPlastic:  99,
		},
		{
			name: "mixed recyclability",
			entries: []scoring.MaterialEntry{
				{Name: "Flyers", Quantity: 300},
				{Name: "Plastic Tote Bags", Quantity: 700},
			},
			wantImpact:   9 + 56,
			wantRate:     "30",
			wantQuantity: 1000,
			wantPlastic:  700,
		},
		{
			name: "unknown predefined name defaults to weight 5 and not recyclable",
			entries: []scoring.MaterialEntry{
				{Name: "Banners", Quantity: 400},
			},
			wantImpact:         20,
			wantRate:           "0",
			wantQuantity:       400,
			wantDefaultedNames: []string{"Banners"},
		},
		{
			name: "custom entries use their own weight and recyclability",
			entries: []scoring.MaterialEntry{
				{Name: "Bamboo Utensils", Custom: true, Quantity: 500, CustomWeight: 1, CustomRecyclable: true},
				{Name: "Balloons", Custom: true, Quantity: 500, CustomWeight: 9, CustomRecyclable: false},
			},
			wantImpact:   5 + 45,
			wantRate:     "50",
			wantQuantity: 1000,
		},
		{
			name: "custom entry without weight uses the default weight",
			entries: []scoring.MaterialEntry{
				{Name: "Mystery Swag", Custom: true, Quantity: 100, CustomWeight: 0, CustomRecyclable: true},
			},
			wantImpact:         5,
			wantRate:           "100",
			wantQuantity:       100,
			wantDefaultedNames: []string{"Mystery Swag"},
		},
		{
			name: "custom entry named like a predefined material keeps its own values",
			entries: []scoring.MaterialEntry{
				{Name: "Brochures", Custom: true, Quantity: 100, CustomWeight: 10, CustomRecyclable: false},
			},
			wantImpact:   10,
			wantRate:     "0",
			wantQuantity: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scoring.AnalyzeMaterials(tt.entries, scoring.DefaultMaterialCatalog())
			require.Equal(t, tt.wantImpact, got.TotalImpact)
			wantRate := decimal.RequireFromString(tt.wantRate)
			require.Truef(t, wantRate.Equal(got.RecyclableRate), "want rate %s, got %s", wantRate, got.RecyclableRate)
			require.Equal(t, tt.wantQuantity, got.TotalQuantity)
			require.Equal(t, tt.wantPlastic, got.PlasticQuantity())
			require.Equal(t, tt.wantDefaultedNames, got.Defaulted)
		})
	}
}

func TestAnalyzeMaterials_nonPositiveQuantitiesNeverChangeTheResult(t *testing.T) {
	t.Parallel()
	catalog := scoring.DefaultMaterialCatalog()
	base := []scoring.MaterialEntry{
		{Name: "Flyers", Quantity: 450},
		{Name: "Cotton Tote Bags", Quantity: 120},
	}
	absent := []scoring.MaterialEntry{
		{Name: "Plastic Tote Bags", Quantity: 0},
		{Name: "Unknown", Quantity: -5},
		{Name: "Custom", Custom: true, Quantity: 0, CustomWeight: 10},
	}
	want := scoring.AnalyzeMaterials(base, catalog)
	got := scoring.AnalyzeMaterials(append(append([]scoring.MaterialEntry{}, absent...), base...), catalog)
	require.Equal(t, want, got)
}
