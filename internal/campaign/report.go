package campaign

import (
	"sort"

	"github.com/myrjola/sustainscore/internal/scoring"
	"github.com/shopspring/decimal"
)

// WeakPillarThreshold is the score below which a pillar is reported as weak.
const WeakPillarThreshold = 10

// ReportDocument is the wire form of a [scoring.Report].
type ReportDocument struct {
	Campaign    string            `json:"campaign"`
	TotalStaff  int               `json:"total_staff"`
	Total       int               `json:"total"`
	MaxTotal    int               `json:"max_total"`
	Pillars     []PillarDocument  `json:"pillars"`
	Breakdown   BreakdownDocument `json:"breakdown"`
	Carbon      CarbonDocument    `json:"carbon"`
	Materials   MaterialsDocument `json:"materials"`
	WeakPillars []string          `json:"weak_pillars"`
	OverMax     []string          `json:"over_max"`
}

type PillarDocument struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

type BreakdownDocument struct {
	Travel        int `json:"travel"`
	Material      int `json:"material"`
	LocalVendor   int `json:"local_vendor"`
	Accommodation int `json:"accommodation"`
}

type CarbonDocument struct {
	// TotalKg is rounded to one decimal for display. Scoring uses the exact value.
	TotalKg          float64            `json:"total_kg"`
	ByModeKg         map[string]float64 `json:"by_mode_kg"`
	BenchmarkKg      int                `json:"benchmark_kg"`
	ExceedsBenchmark bool               `json:"exceeds_benchmark"`
	DefaultedModes   []string           `json:"defaulted_modes"`
}

type MaterialsDocument struct {
	TotalImpact int `json:"total_impact"`
	// RecyclableRate is a percentage rounded to one decimal for display.
	RecyclableRate     float64        `json:"recyclable_rate"`
	TotalQuantity      int            `json:"total_quantity"`
	PlasticQuantity    int            `json:"plastic_quantity"`
	QuantityByCategory map[string]int `json:"quantity_by_category"`
	DefaultedMaterials []string       `json:"defaulted_materials"`
}

func displayValue(d decimal.Decimal) float64 {
	return d.Round(1).InexactFloat64()
}

func pillarNames(pillars []scoring.PillarScore) []string {
	names := make([]string, 0, len(pillars))
	for _, p := range pillars {
		names = append(names, string(p.Pillar))
	}
	return names
}

// NewReportDocument renders the report of campaign c.
func NewReportDocument(c scoring.Campaign, r scoring.Report) ReportDocument {
	pillars := make([]PillarDocument, 0, len(r.Pillars()))
	for _, p := range r.Pillars() {
		pillars = append(pillars, PillarDocument{Name: string(p.Pillar), Score: p.Score, Max: p.Max})
	}

	byMode := make(map[string]float64, len(r.Emissions.ByMode))
	for mode, kg := range r.Emissions.ByMode {
		byMode[string(mode)] = displayValue(kg)
	}
	defaultedModes := make([]string, 0, len(r.Emissions.Defaulted))
	for _, mode := range r.Emissions.Defaulted {
		defaultedModes = append(defaultedModes, string(mode))
	}
	sort.Strings(defaultedModes)

	byCategory := make(map[string]int, len(r.Materials.QuantityByCategory))
	for category, quantity := range r.Materials.QuantityByCategory {
		byCategory[category] = quantity
	}
	defaultedMaterials := append([]string{}, r.Materials.Defaulted...)

	return ReportDocument{
		Campaign:   c.Name,
		TotalStaff: c.TotalStaff(),
		Total:      r.Total,
		MaxTotal:   scoring.MaxTotalScore,
		Pillars:    pillars,
		Breakdown: BreakdownDocument{
			Travel:        r.Breakdown.Travel,
			Material:      r.Breakdown.Material,
			LocalVendor:   r.Breakdown.LocalVendor,
			Accommodation: r.Breakdown.Accommodation,
		},
		Carbon: CarbonDocument{
			TotalKg:          displayValue(r.Emissions.TotalKg),
			ByModeKg:         byMode,
			BenchmarkKg:      scoring.BenchmarkCarbonKg,
			ExceedsBenchmark: r.Emissions.ExceedsBenchmark(),
			DefaultedModes:   defaultedModes,
		},
		Materials: MaterialsDocument{
			TotalImpact:        r.Materials.TotalImpact,
			RecyclableRate:     displayValue(r.Materials.RecyclableRate),
			TotalQuantity:      r.Materials.TotalQuantity,
			PlasticQuantity:    r.Materials.PlasticQuantity(),
			QuantityByCategory: byCategory,
			DefaultedMaterials: defaultedMaterials,
		},
		WeakPillars: pillarNames(r.WeakPillars(WeakPillarThreshold)),
		OverMax:     pillarNames(r.Excess()),
	}
}

// ReferenceDocument describes the tables and policy an engine scores with.
type ReferenceDocument struct {
	EmissionFactors    map[string]float64  `json:"emission_factors"`
	Materials          []MaterialReference `json:"materials"`
	GovernanceCriteria []string            `json:"governance_criteria"`
	OperationsCriteria []string            `json:"operations_criteria"`
	Rounding           string              `json:"rounding"`
	MaterialCeiling    int                 `json:"material_ceiling"`
	BenchmarkKg        int                 `json:"benchmark_kg"`
}

type MaterialReference struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	ImpactWeight int    `json:"impact_weight"`
	Recyclable   bool   `json:"recyclable"`
}

// NewReferenceDocument renders the reference tables of e.
func NewReferenceDocument(e scoring.Engine) ReferenceDocument {
	factors := e.Factors()
	modes := factors.Modes()
	emissionFactors := make(map[string]float64, len(modes))
	for _, mode := range modes {
		factor, _ := factors.Resolve(mode)
		emissionFactors[string(mode)] = factor.InexactFloat64()
	}

	definitions := e.Catalog().Definitions()
	materials := make([]MaterialReference, 0, len(definitions))
	for _, d := range definitions {
		materials = append(materials, MaterialReference{
			Name:         d.Name,
			Category:     d.Category,
			ImpactWeight: d.ImpactWeight,
			Recyclable:   d.Recyclable,
		})
	}

	policy := e.Policy()
	ceiling := policy.MaterialCeiling
	if ceiling <= 0 {
		ceiling = scoring.DefaultMaterialCeiling
	}
	return ReferenceDocument{
		EmissionFactors:    emissionFactors,
		Materials:          materials,
		GovernanceCriteria: append([]string{}, scoring.GovernanceCriteria[:]...),
		OperationsCriteria: append([]string{}, scoring.OperationsCriteria[:]...),
		Rounding:           policy.Rounding.String(),
		MaterialCeiling:    ceiling,
		BenchmarkKg:        scoring.BenchmarkCarbonKg,
	}
}
