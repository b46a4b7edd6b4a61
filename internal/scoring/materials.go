package scoring

import (
	"github.com/shopspring/decimal"
)

// impactBatchSize is the number of units of one material that add its impact weight once.
const impactBatchSize = 100

var hundred = decimal.NewFromInt(100) //nolint:gochecknoglobals // constant decimal

// MaterialMetrics is the result of the material impact analysis.
type MaterialMetrics struct {
	// TotalImpact is the sum of floor(quantity/100) × impact weight.
	TotalImpact int
	// RecyclableRate is the percentage of units that are recyclable, in [0, 100]. It is 100 when no materials are
	// used.
	RecyclableRate     decimal.Decimal
	TotalQuantity      int
	RecyclableQuantity int
	// QuantityByCategory counts units per material category.
	QuantityByCategory map[string]int
	// Defaulted lists predefined names that were missing from the catalog and custom entries without a weight.
	Defaulted []string
}

// PlasticQuantity is the number of units in the plastic category.
func (m MaterialMetrics) PlasticQuantity() int {
	return m.QuantityByCategory[CategoryPlastic]
}

// AnalyzeMaterials computes the impact and recyclability of the material entries.
//
// Entries with a quantity of zero or less are treated as absent.
func AnalyzeMaterials(entries []MaterialEntry, catalog MaterialCatalog) MaterialMetrics {
	metrics := MaterialMetrics{
		TotalImpact:        0,
		RecyclableRate:     hundred,
		TotalQuantity:      0,
		RecyclableQuantity: 0,
		QuantityByCategory: map[string]int{},
		Defaulted:          nil,
	}
	for _, entry := range entries {
		if entry.Quantity <= 0 {
			continue
		}
		definition, resolution := resolveMaterial(entry, catalog)
		if resolution == Defaulted {
			metrics.Defaulted = append(metrics.Defaulted, entry.Name)
		}

		metrics.TotalImpact += entry.Quantity / impactBatchSize * definition.ImpactWeight
		metrics.TotalQuantity += entry.Quantity
		metrics.QuantityByCategory[definition.Category] += entry.Quantity
		if definition.Recyclable {
			metrics.RecyclableQuantity += entry.Quantity
		}
	}
	if metrics.TotalQuantity > 0 {
		metrics.RecyclableRate = decimal.NewFromInt(int64(metrics.RecyclableQuantity)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(metrics.TotalQuantity)))
	}
	return metrics
}

// resolveMaterial returns the weight and recyclability that apply to entry.
func resolveMaterial(entry MaterialEntry, catalog MaterialCatalog) (MaterialDefinition, Resolution) {
	if !entry.Custom {
		return catalog.Lookup(entry.Name)
	}
	definition := MaterialDefinition{
		Name:         entry.Name,
		Category:     CategoryCustom,
		ImpactWeight: entry.CustomWeight,
		Recyclable:   entry.CustomRecyclable,
	}
	if entry.CustomWeight <= 0 {
		definition.ImpactWeight = DefaultImpactWeight
		return definition, Defaulted
	}
	return definition, Matched
}
