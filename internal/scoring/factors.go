package scoring

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Resolution tags how a reference-table lookup was satisfied.
type Resolution int

const (
	// Matched means the key was found in the table.
	Matched Resolution = iota
	// Aliased means a legacy spelling was mapped to a key of the table.
	Aliased
	// Defaulted means the key was unknown and the documented default was used.
	Defaulted
)

func (r Resolution) String() string {
	switch r {
	case Matched:
		return "matched"
	case Aliased:
		return "aliased"
	case Defaulted:
		return "defaulted"
	default:
		return "unknown"
	}
}

// DefaultOtherFactor is used when neither the requested mode nor ModeOther is in the table.
var DefaultOtherFactor = decimal.RequireFromString("0.12")

// EmissionFactors maps travel modes to kilograms of CO₂ per kilometre per person.
//
// The zero value is an empty table where every lookup falls back to DefaultOtherFactor. Values are never mutated
// after construction so one table can be shared by concurrent scoring runs.
type EmissionFactors struct {
	factors map[TravelMode]decimal.Decimal
}

// NewEmissionFactors copies factors into a new table.
func NewEmissionFactors(factors map[TravelMode]decimal.Decimal) EmissionFactors {
	copied := make(map[TravelMode]decimal.Decimal, len(factors))
	for mode, factor := range factors {
		copied[mode] = factor
	}
	return EmissionFactors{factors: copied}
}

// DefaultEmissionFactors returns the table with flight seat classes.
func DefaultEmissionFactors() EmissionFactors {
	return NewEmissionFactors(map[TravelMode]decimal.Decimal{
		ModeAirEconomy:        decimal.RequireFromString("0.25"),
		ModeAirPremiumEconomy: decimal.RequireFromString("0.35"),
		ModeAirBusiness:       decimal.RequireFromString("0.60"),
		ModeAirFirstClass:     decimal.RequireFromString("0.90"),
		ModeTrain:             decimal.RequireFromString("0.06"),
		ModeCar:               decimal.RequireFromString("0.17"),
		ModeBus:               decimal.RequireFromString("0.08"),
		ModeOther:             DefaultOtherFactor,
	})
}

// CollapsedEmissionFactors returns the table of deployments that use a single air mode.
func CollapsedEmissionFactors() EmissionFactors {
	return NewEmissionFactors(map[TravelMode]decimal.Decimal{
		ModeAir:   decimal.RequireFromString("0.25"),
		ModeTrain: decimal.RequireFromString("0.06"),
		ModeCar:   decimal.RequireFromString("0.17"),
		ModeBus:   decimal.RequireFromString("0.08"),
		ModeOther: DefaultOtherFactor,
	})
}

// Merge returns a new table where overrides replace or extend the factors of t.
func (t EmissionFactors) Merge(overrides map[TravelMode]decimal.Decimal) EmissionFactors {
	merged := make(map[TravelMode]decimal.Decimal, len(t.factors)+len(overrides))
	for mode, factor := range t.factors {
		merged[mode] = factor
	}
	for mode, factor := range overrides {
		merged[mode] = factor
	}
	return EmissionFactors{factors: merged}
}

// Resolve looks up the factor of mode.
//
// The legacy single "Air" mode is aliased to economy class when the table has seat classes but no "Air" entry.
// Unknown modes use the ModeOther factor, or DefaultOtherFactor if the table has none.
func (t EmissionFactors) Resolve(mode TravelMode) (decimal.Decimal, Resolution) {
	if factor, ok := t.factors[mode]; ok {
		return factor, Matched
	}
	if mode == ModeAir {
		if factor, ok := t.factors[ModeAirEconomy]; ok {
			return factor, Aliased
		}
	}
	if factor, ok := t.factors[ModeOther]; ok {
		return factor, Defaulted
	}
	return DefaultOtherFactor, Defaulted
}

// Modes lists the modes of the table in alphabetical order.
func (t EmissionFactors) Modes() []TravelMode {
	modes := make([]TravelMode, 0, len(t.factors))
	for mode := range t.factors {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}
