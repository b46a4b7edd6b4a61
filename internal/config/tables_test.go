package config_test

import (
	"testing"

	"github.com/myrjola/sustainscore/internal/config"
	"github.com/myrjola/sustainscore/internal/scoring"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseTables(t *testing.T) {
	t.Parallel()

	t.Run("empty file gives the defaults", func(t *testing.T) {
		t.Parallel()
		tables, err := config.ParseTables(nil)
		require.NoError(t, err)
		require.Equal(t, config.DefaultTables(), tables)
	})

	t.Run("overrides merge over the preset", func(t *testing.T) {
		t.Parallel()
		tables, err := config.ParseTables([]byte(`
preset: seat-class
emission_factors:
  air-economy: 0.2
  Ferry: 0.11
materials:
  - name: Brochures
    category: Paper
    impact_weight: 2
    recyclable: true
  - name: Lanyards
    impact_weight: 4
`))
		require.NoError(t, err)

		factor, resolution := tables.Factors.Resolve(scoring.ModeAirEconomy)
		require.Equal(t, scoring.Matched, resolution)
		require.True(t, decimal.RequireFromString("0.2").Equal(factor))
		factor, resolution = tables.Factors.Resolve("Ferry")
		require.Equal(t, scoring.Matched, resolution)
		require.True(t, decimal.RequireFromString("0.11").Equal(factor))
		factor, _ = tables.Factors.Resolve(scoring.ModeAirBusiness)
		require.True(t, decimal.RequireFromString("0.6").Equal(factor))

		brochures, _ := tables.Catalog.Lookup("Brochures")
		require.Equal(t, 2, brochures.ImpactWeight)
		lanyards, resolution := tables.Catalog.Lookup("Lanyards")
		require.Equal(t, scoring.Matched, resolution)
		require.Equal(t, scoring.CategoryCustom, lanyards.Category)
		require.False(t, lanyards.Recyclable)
	})

	t.Run("collapsed preset", func(t *testing.T) {
		t.Parallel()
		tables, err := config.ParseTables([]byte("preset: collapsed\n"))
		require.NoError(t, err)
		_, resolution := tables.Factors.Resolve(scoring.ModeAir)
		require.Equal(t, scoring.Matched, resolution)
		_, resolution = tables.Factors.Resolve(scoring.ModeAirEconomy)
		require.Equal(t, scoring.Defaulted, resolution)
	})

	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown preset", yaml: "preset: metric\n"},
		{name: "negative factor", yaml: "emission_factors:\n  Train: -0.1\n"},
		{name: "zero impact weight", yaml: "materials:\n  - name: Stickers\n    impact_weight: 0\n"},
		{name: "material without name", yaml: "materials:\n  - impact_weight: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.ParseTables([]byte(tt.yaml))
			require.ErrorIs(t, err, config.ErrInvalidTables)
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := config.ParseTables([]byte("factors:\n  Train: 0.1\n"))
		require.Error(t, err)
	})
}
