package campaign

import "github.com/myrjola/sustainscore/internal/scoring"

// Example returns a filled-in product launch document. It scores 44 with the default engine.
func Example() Document {
	vendorPercent := 70
	return Document{
		Name:         "Green Horizons Launch 2024",
		DurationDays: 3,
		StaffGroups: []StaffGroup{
			{
				StaffCount:    15,
				Departure:     "Berlin",
				Destination:   "Madrid",
				DistanceKm:    870,
				TravelMode:    string(scoring.ModeAirEconomy),
				Accommodation: string(scoring.AccommodationFourStar),
			},
		},
		Materials: []Material{
			{Type: "Brochures", Quantity: 2000},
		},
		LocalVendorPercent: &vendorPercent,
		UsesLocalVendors:   nil,
		GovernanceChecks:   nil,
		OperationsChecks:   nil,
	}
}
