package scoring

// DefaultImpactWeight is used for unknown predefined materials and custom materials without a weight.
const DefaultImpactWeight = 5

// Material categories of the default catalog.
const (
	CategoryPaper   = "Paper"
	CategoryPlastic = "Plastic"
	CategoryCotton  = "Cotton"
	CategoryMetal   = "Metal"
	// CategoryCustom groups custom entries and unknown predefined names.
	CategoryCustom = "Custom"
)

// MaterialDefinition is the static reference data of a predefined material.
type MaterialDefinition struct {
	Name         string
	Category     string
	ImpactWeight int
	Recyclable   bool
}

// MaterialCatalog holds the predefined materials in their definition order.
//
// Like EmissionFactors, a catalog is never mutated after construction.
type MaterialCatalog struct {
	definitions []MaterialDefinition
	byName      map[string]int
}

// NewMaterialCatalog builds a catalog. Later definitions replace earlier ones with the same name.
func NewMaterialCatalog(definitions ...MaterialDefinition) MaterialCatalog {
	return MaterialCatalog{}.Merge(definitions...)
}

// DefaultMaterialCatalog returns the predefined campaign materials.
func DefaultMaterialCatalog() MaterialCatalog {
	return NewMaterialCatalog(
		MaterialDefinition{Name: "Brochures", Category: CategoryPaper, ImpactWeight: 3, Recyclable: true},
		MaterialDefinition{Name: "Flyers", Category: CategoryPaper, ImpactWeight: 3, Recyclable: true},
		MaterialDefinition{Name: "Plastic Tote Bags", Category: CategoryPlastic, ImpactWeight: 8, Recyclable: false},
		MaterialDefinition{Name: "Cotton Tote Bags", Category: CategoryCotton, ImpactWeight: 2, Recyclable: true},
		MaterialDefinition{Name: "Metal Badges", Category: CategoryMetal, ImpactWeight: 5, Recyclable: true},
	)
}

// Merge returns a new catalog with definitions added or replaced by name.
func (c MaterialCatalog) Merge(definitions ...MaterialDefinition) MaterialCatalog {
	merged := MaterialCatalog{
		definitions: make([]MaterialDefinition, len(c.definitions), len(c.definitions)+len(definitions)),
		byName:      make(map[string]int, len(c.definitions)+len(definitions)),
	}
	copy(merged.definitions, c.definitions)
	for name, i := range c.byName {
		merged.byName[name] = i
	}
	for _, d := range definitions {
		if i, ok := merged.byName[d.Name]; ok {
			merged.definitions[i] = d
			continue
		}
		merged.byName[d.Name] = len(merged.definitions)
		merged.definitions = append(merged.definitions, d)
	}
	return merged
}

// Lookup finds the definition with exactly the given name.
//
// Unknown names resolve to a non-recyclable definition with DefaultImpactWeight.
func (c MaterialCatalog) Lookup(name string) (MaterialDefinition, Resolution) {
	if i, ok := c.byName[name]; ok {
		return c.definitions[i], Matched
	}
	return MaterialDefinition{
		Name:         name,
		Category:     CategoryCustom,
		ImpactWeight: DefaultImpactWeight,
		Recyclable:   false,
	}, Defaulted
}

// Definitions returns a copy of the definitions in catalog order.
func (c MaterialCatalog) Definitions() []MaterialDefinition {
	definitions := make([]MaterialDefinition, len(c.definitions))
	copy(definitions, c.definitions)
	return definitions
}
