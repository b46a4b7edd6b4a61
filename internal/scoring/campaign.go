package scoring

import (
	"strings"
)

// Campaign is the immutable snapshot of inputs for one scoring run.
type Campaign struct {
	Name               string
	DurationDays       int
	TravelGroups       []TravelGroup
	Materials          []MaterialEntry
	LocalVendorPercent int
	GovernanceChecks   [ChecklistLength]bool
	OperationsChecks   [ChecklistLength]bool
}

// TotalStaff sums the staff over all travel groups.
func (c Campaign) TotalStaff() int {
	total := 0
	for _, g := range c.TravelGroups {
		total += g.StaffCount
	}
	return total
}

// TravelGroup is one cohort of staff sharing a trip.
type TravelGroup struct {
	StaffCount    int
	Departure     string
	Destination   string
	DistanceKm    float64
	Mode          TravelMode
	Accommodation Accommodation
}

// TravelMode keys the emission factor table.
type TravelMode string

const (
	ModeAirEconomy        TravelMode = "Air - Economy"
	ModeAirPremiumEconomy TravelMode = "Air - Premium Economy"
	ModeAirBusiness       TravelMode = "Air - Business"
	ModeAirFirstClass     TravelMode = "Air - First Class"
	ModeTrain             TravelMode = "Train"
	ModeCar               TravelMode = "Car"
	ModeBus               TravelMode = "Bus"
	ModeOther             TravelMode = "Other"
	// ModeAir is the single air mode of deployments without seat classes.
	ModeAir TravelMode = "Air"
)

var knownModes = []TravelMode{
	ModeAirEconomy, ModeAirPremiumEconomy, ModeAirBusiness, ModeAirFirstClass,
	ModeTrain, ModeCar, ModeBus, ModeOther, ModeAir,
}

// ParseTravelMode canonicalises the spelling of a travel mode.
//
// Matching ignores case, spaces and hyphens so that "Air-Economy" and "air - economy" both resolve to ModeAirEconomy.
// Unknown modes are returned trimmed with ok set to false. They are still valid input since the emission factor
// table is configurable and falls back to ModeOther.
func ParseTravelMode(s string) (TravelMode, bool) {
	key := modeKey(s)
	for _, m := range knownModes {
		if modeKey(string(m)) == key {
			return m, true
		}
	}
	return TravelMode(strings.TrimSpace(s)), false
}

func modeKey(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Accommodation is the hotel class of a travel group.
type Accommodation string

const (
	AccommodationBudget    Accommodation = "Budget"
	AccommodationThreeStar Accommodation = "3-star"
	AccommodationFourStar  Accommodation = "4-star"
	AccommodationFiveStar  Accommodation = "5-star"
)

var accommodations = []Accommodation{
	AccommodationBudget, AccommodationThreeStar, AccommodationFourStar, AccommodationFiveStar,
}

// ParseAccommodation matches an accommodation class case-insensitively.
func ParseAccommodation(s string) (Accommodation, bool) {
	s = strings.TrimSpace(s)
	for _, a := range accommodations {
		if strings.EqualFold(string(a), s) {
			return a, true
		}
	}
	return "", false
}

// MaterialEntry is one material and quantity used in the campaign.
//
// Predefined entries reference a MaterialDefinition by Name. Custom entries carry their own impact weight and
// recyclability.
type MaterialEntry struct {
	Name             string
	Custom           bool
	Quantity         int
	CustomWeight     int
	CustomRecyclable bool
}

// ChecklistLength is the number of criteria in the governance and operations checklists.
const ChecklistLength = 5

// GovernanceCriteria names the governance checklist positions.
var GovernanceCriteria = [ChecklistLength]string{
	"Written sustainability goal",
	"Vendor contracts with sustainability clauses",
	"Eco-certified travel providers",
	"Certified material suppliers (FSC, Fair Trade)",
	"Planned post-campaign sustainability report",
}

// OperationsCriteria names the operations checklist positions.
var OperationsCriteria = [ChecklistLength]string{
	"Campaign duration ≤ 3 days",
	"Digital alternatives for printed materials",
	"Consolidated staff travel (shared cars/trains)",
	"Leftover materials donated/recycled",
	"Accommodation near venue (walking/transit)",
}
