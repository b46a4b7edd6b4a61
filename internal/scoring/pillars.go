package scoring

import (
	"github.com/shopspring/decimal"
)

// Pillar is one of the four top-level scoring categories.
type Pillar string

const (
	PillarEnvironmental Pillar = "Environmental Impact"
	PillarSocial        Pillar = "Social Responsibility"
	PillarGovernance    Pillar = "Governance"
	PillarOperations    Pillar = "Operations"
)

// Pillar maxima. They add up to MaxTotalScore.
const (
	MaxEnvironmental = 40
	MaxSocial        = 30
	MaxGovernance    = 20
	MaxOperations    = 10
	MaxTotalScore    = MaxEnvironmental + MaxSocial + MaxGovernance + MaxOperations
)

// PillarScore is the score of one pillar and its nominal maximum.
type PillarScore struct {
	Pillar Pillar
	Score  int
	Max    int
}

// Breakdown holds the sub-scores of the environmental and social pillars.
type Breakdown struct {
	Travel        int
	Material      int
	LocalVendor   int
	Accommodation int
}

// Report is the output of one scoring run.
type Report struct {
	Environmental PillarScore
	Social        PillarScore
	Governance    PillarScore
	Operations    PillarScore
	// Total is the unclamped sum of the four pillar scores.
	Total     int
	Breakdown Breakdown
	Emissions Emissions
	Materials MaterialMetrics
}

// Pillars returns the pillar scores in their canonical order.
func (r Report) Pillars() []PillarScore {
	return []PillarScore{r.Environmental, r.Social, r.Governance, r.Operations}
}

// Excess returns the pillars whose score exceeds their nominal maximum.
//
// Only the environmental pillar can exceed it, when the material ceiling allows more than 20 points.
func (r Report) Excess() []PillarScore {
	var excess []PillarScore
	for _, p := range r.Pillars() {
		if p.Score > p.Max {
			excess = append(excess, p)
		}
	}
	return excess
}

// WeakPillars returns the pillars scoring below threshold.
func (r Report) WeakPillars(threshold int) []PillarScore {
	var weak []PillarScore
	for _, p := range r.Pillars() {
		if p.Score < threshold {
			weak = append(weak, p)
		}
	}
	return weak
}

// travelBands are upper-inclusive carbon limits in kilograms and their travel sub-scores.
var travelBands = []struct { //nolint:gochecknoglobals // lookup table
	maxKg decimal.Decimal
	score int
}{
	{maxKg: decimal.NewFromInt(500), score: 20},
	{maxKg: decimal.NewFromInt(1000), score: 17},
	{maxKg: decimal.NewFromInt(1500), score: 14},
	{maxKg: decimal.NewFromInt(2000), score: 11},
}

// travelScoreAboveBands applies to everything above the last band.
const travelScoreAboveBands = 8

// TravelScore maps total carbon to the travel sub-score (max 20).
func TravelScore(totalKg decimal.Decimal) int {
	for _, band := range travelBands {
		if totalKg.LessThanOrEqual(band.maxKg) {
			return band.score
		}
	}
	return travelScoreAboveBands
}

const (
	materialBase       = 20
	maxMaterialPenalty = 10
	impactPerPenalty   = 5
)

var (
	highRecyclableRate = decimal.NewFromInt(70) //nolint:gochecknoglobals // constant decimal
	midRecyclableRate  = decimal.NewFromInt(30) //nolint:gochecknoglobals // constant decimal
)

// MaterialScore maps the material metrics to the material sub-score.
//
// The result is clamped to [0, policy ceiling]. With the default ceiling it can reach 25.
func MaterialScore(metrics MaterialMetrics, policy Policy) int {
	penalty := min(maxMaterialPenalty, metrics.TotalImpact/impactPerPenalty)
	bonus := 0
	switch {
	case metrics.RecyclableRate.GreaterThanOrEqual(highRecyclableRate):
		bonus = 5
	case metrics.RecyclableRate.GreaterThanOrEqual(midRecyclableRate):
		bonus = 2
	}
	return max(0, min(policy.materialCeiling(), materialBase-penalty+bonus))
}

const maxLocalVendorScore = 15

// LocalVendorScore maps the share of local vendors to the local vendor sub-score (max 15).
func LocalVendorScore(localVendorPercent int, rounding Rounding) int {
	scaled := decimal.NewFromInt(int64(localVendorPercent)).
		Mul(decimal.NewFromInt(maxLocalVendorScore)).
		Div(hundred)
	return min(maxLocalVendorScore, rounding.round(scaled))
}

// accommodationPoints are the per-person points of each accommodation class.
var accommodationPoints = map[Accommodation]int{ //nolint:gochecknoglobals // lookup table
	AccommodationBudget:    15,
	AccommodationThreeStar: 15,
	AccommodationFourStar:  10,
	AccommodationFiveStar:  5,
}

// AccommodationScore is the staff-weighted average of accommodation points (max 15), rounded down.
//
// Unknown accommodation classes earn no points. Without staff the score is 0.
func AccommodationScore(groups []TravelGroup) int {
	totalStaff, totalPoints := 0, 0
	for _, g := range groups {
		totalStaff += g.StaffCount
		totalPoints += accommodationPoints[g.Accommodation] * g.StaffCount
	}
	if totalStaff <= 0 {
		return 0
	}
	return totalPoints / totalStaff
}

const (
	pointsPerGovernanceCheck = 4
	pointsPerOperationsCheck = 2
)

func countChecked(checks [ChecklistLength]bool) int {
	n := 0
	for _, checked := range checks {
		if checked {
			n++
		}
	}
	return n
}

// AggregatePillars combines the emission and material results with the rest of the campaign into a report.
func AggregatePillars(c Campaign, emissions Emissions, metrics MaterialMetrics, policy Policy) Report {
	breakdown := Breakdown{
		Travel:        TravelScore(emissions.TotalKg),
		Material:      MaterialScore(metrics, policy),
		LocalVendor:   LocalVendorScore(c.LocalVendorPercent, policy.Rounding),
		Accommodation: AccommodationScore(c.TravelGroups),
	}
	report := Report{
		Environmental: PillarScore{
			Pillar: PillarEnvironmental,
			Score:  breakdown.Travel + breakdown.Material,
			Max:    MaxEnvironmental,
		},
		Social: PillarScore{
			Pillar: PillarSocial,
			Score:  breakdown.LocalVendor + breakdown.Accommodation,
			Max:    MaxSocial,
		},
		Governance: PillarScore{
			Pillar: PillarGovernance,
			Score:  countChecked(c.GovernanceChecks) * pointsPerGovernanceCheck,
			Max:    MaxGovernance,
		},
		Operations: PillarScore{
			Pillar: PillarOperations,
			Score:  countChecked(c.OperationsChecks) * pointsPerOperationsCheck,
			Max:    MaxOperations,
		},
		Total:     0,
		Breakdown: breakdown,
		Emissions: emissions,
		Materials: metrics,
	}
	for _, p := range report.Pillars() {
		report.Total += p.Score
	}
	return report
}
