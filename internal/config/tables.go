package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/myrjola/sustainscore/internal/scoring"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Table presets.
const (
	PresetSeatClass = "seat-class"
	PresetCollapsed = "collapsed"
)

var ErrInvalidTables = errors.NewSentinel("invalid reference tables")

// Tables are the reference tables an engine scores against.
type Tables struct {
	Factors scoring.EmissionFactors
	Catalog scoring.MaterialCatalog
}

// DefaultTables returns the seat-class emission factors and the default material catalog.
func DefaultTables() Tables {
	return Tables{
		Factors: scoring.DefaultEmissionFactors(),
		Catalog: scoring.DefaultMaterialCatalog(),
	}
}

type tablesFile struct {
	Preset          string             `yaml:"preset"`
	EmissionFactors map[string]float64 `yaml:"emission_factors"`
	Materials       []materialFile     `yaml:"materials"`
}

type materialFile struct {
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	ImpactWeight int    `yaml:"impact_weight"`
	Recyclable   bool   `yaml:"recyclable"`
}

// LoadTables reads reference table overrides from a YAML file.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, errors.Wrap(err, "read tables file", slog.String("path", path))
	}
	tables, err := ParseTables(data)
	if err != nil {
		return Tables{}, errors.Wrap(err, "parse tables file", slog.String("path", path))
	}
	return tables, nil
}

// ParseTables parses YAML reference table overrides and merges them over the selected preset.
//
// Example:
//
//	preset: collapsed
//	emission_factors:
//	  Ferry: 0.11
//	materials:
//	  - name: Lanyards
//	    category: Cotton
//	    impact_weight: 2
//	    recyclable: true
func ParseTables(data []byte) (Tables, error) {
	var file tablesFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Tables{}, errors.Wrap(err, "decode yaml")
	}

	var tables Tables
	switch file.Preset {
	case PresetSeatClass, "":
		tables = DefaultTables()
	case PresetCollapsed:
		tables = Tables{
			Factors: scoring.CollapsedEmissionFactors(),
			Catalog: scoring.DefaultMaterialCatalog(),
		}
	default:
		return Tables{}, errors.Wrap(ErrInvalidTables, "unknown preset", slog.String("preset", file.Preset))
	}

	var errs []error
	overrides := make(map[scoring.TravelMode]decimal.Decimal, len(file.EmissionFactors))
	for name, factor := range file.EmissionFactors {
		if factor < 0 {
			errs = append(errs, errors.Wrap(ErrInvalidTables, "negative emission factor",
				slog.String("mode", name), slog.Float64("factor", factor)))
			continue
		}
		mode, _ := scoring.ParseTravelMode(name)
		overrides[mode] = decimal.NewFromFloat(factor)
	}

	definitions := make([]scoring.MaterialDefinition, 0, len(file.Materials))
	for i, m := range file.Materials {
		if m.Name == "" {
			errs = append(errs, errors.Wrap(ErrInvalidTables, "material without name", slog.Int("index", i)))
			continue
		}
		if m.ImpactWeight < 1 {
			errs = append(errs, errors.Wrap(ErrInvalidTables, "impact weight must be at least 1",
				slog.String("material", m.Name), slog.Int("impactWeight", m.ImpactWeight)))
			continue
		}
		category := m.Category
		if category == "" {
			category = scoring.CategoryCustom
		}
		definitions = append(definitions, scoring.MaterialDefinition{
			Name:         m.Name,
			Category:     category,
			ImpactWeight: m.ImpactWeight,
			Recyclable:   m.Recyclable,
		})
	}
	if len(errs) > 0 {
		return Tables{}, errors.Join(errs...)
	}

	tables.Factors = tables.Factors.Merge(overrides)
	tables.Catalog = tables.Catalog.Merge(definitions...)
	return tables, nil
}
