package scoring

import (
	"github.com/shopspring/decimal"
)

// BenchmarkCarbonKg is the industry benchmark that campaign travel emissions are compared against.
const BenchmarkCarbonKg = 2000

// Emissions is the result of the travel emission calculation.
type Emissions struct {
	// TotalKg is the exact total of kilograms of CO₂. It is never negative.
	TotalKg decimal.Decimal
	// ByMode breaks the total down by the travel mode given in the travel groups.
	ByMode map[TravelMode]decimal.Decimal
	// Defaulted lists the modes that were unknown to the factor table, in first-seen order.
	Defaulted []TravelMode
}

// ExceedsBenchmark reports whether the total is above BenchmarkCarbonKg.
func (e Emissions) ExceedsBenchmark() bool {
	return e.TotalKg.GreaterThan(decimal.NewFromInt(BenchmarkCarbonKg))
}

// CalculateEmissions sums distance × factor × staff over the travel groups.
//
// Groups without a positive distance contribute nothing. Modes unknown to factors use the "Other" factor.
func CalculateEmissions(groups []TravelGroup, factors EmissionFactors) Emissions {
	emissions := Emissions{
		TotalKg:   decimal.Zero,
		ByMode:    map[TravelMode]decimal.Decimal{},
		Defaulted: nil,
	}
	seenDefaulted := map[TravelMode]bool{}
	for _, g := range groups {
		if g.DistanceKm <= 0 || g.StaffCount <= 0 {
			continue
		}
		factor, resolution := factors.Resolve(g.Mode)
		if resolution == Defaulted && !seenDefaulted[g.Mode] {
			seenDefaulted[g.Mode] = true
			emissions.Defaulted = append(emissions.Defaulted, g.Mode)
		}
		groupKg := decimal.NewFromFloat(g.DistanceKm).
			Mul(factor).
			Mul(decimal.NewFromInt(int64(g.StaffCount)))
		emissions.TotalKg = emissions.TotalKg.Add(groupKg)
		emissions.ByMode[g.Mode] = emissions.ByMode[g.Mode].Add(groupKg)
	}
	return emissions
}
