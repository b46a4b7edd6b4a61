// Package scoring turns a campaign snapshot into a sustainability score out of 100.
//
// Travel emissions and material impact are computed independently and then aggregated into four pillars:
// Environmental Impact (40), Social Responsibility (30), Governance (20) and Operations (10).
// All functions are pure. Reference tables are immutable values that can be shared between goroutines.
package scoring

// Engine scores campaigns against one set of reference tables and policy.
type Engine struct {
	factors EmissionFactors
	catalog MaterialCatalog
	policy  Policy
}

// NewEngine creates an engine. The tables should be fully built before the engine is used.
func NewEngine(factors EmissionFactors, catalog MaterialCatalog, policy Policy) Engine {
	return Engine{
		factors: factors,
		catalog: catalog,
		policy:  policy,
	}
}

// DefaultEngine uses the seat-class emission factors, the default material catalog and DefaultPolicy.
func DefaultEngine() Engine {
	return NewEngine(DefaultEmissionFactors(), DefaultMaterialCatalog(), DefaultPolicy())
}

// Score runs the emission calculator and material analyzer on c and aggregates their results.
func (e Engine) Score(c Campaign) Report {
	emissions := CalculateEmissions(c.TravelGroups, e.factors)
	metrics := AnalyzeMaterials(c.Materials, e.catalog)
	return AggregatePillars(c, emissions, metrics, e.policy)
}

func (e Engine) Factors() EmissionFactors {
	return e.factors
}

func (e Engine) Catalog() MaterialCatalog {
	return e.catalog
}

func (e Engine) Policy() Policy {
	return e.policy
}
