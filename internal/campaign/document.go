// Package campaign holds the wire form of campaign snapshots and score reports.
//
// Documents are validated and converted to [scoring.Campaign] before they reach the scoring engine, which assumes
// well-formed input.
package campaign

import (
	"fmt"
	"strings"

	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/myrjola/sustainscore/internal/scoring"
)

// CustomMaterialType marks a material entry that carries its own name, weight and recyclability.
const CustomMaterialType = "Other (Custom)"

// Bounds of the collected input.
const (
	MinCustomWeight  = 1
	MaxCustomWeight  = 10
	MaxVendorPercent = 100
)

var ErrInvalidCampaign = errors.NewSentinel("invalid campaign")

// Document is a campaign snapshot as submitted by a client or read from a file.
type Document struct {
	Name         string       `json:"name"          yaml:"name"`
	DurationDays int          `json:"duration_days" yaml:"duration_days"`
	StaffGroups  []StaffGroup `json:"staff_groups"  yaml:"staff_groups"`
	Materials    []Material   `json:"materials"     yaml:"materials"`
	// LocalVendorPercent is ignored when UsesLocalVendors is explicitly false.
	LocalVendorPercent *int  `json:"local_vendor_percent,omitempty" yaml:"local_vendor_percent,omitempty"`
	UsesLocalVendors   *bool `json:"uses_local_vendors,omitempty"   yaml:"uses_local_vendors,omitempty"`
	// Checklists have exactly five answers or are omitted.
	GovernanceChecks []bool `json:"governance_checks,omitempty" yaml:"governance_checks,omitempty"`
	OperationsChecks []bool `json:"operations_checks,omitempty" yaml:"operations_checks,omitempty"`
}

// StaffGroup is the wire form of [scoring.TravelGroup].
type StaffGroup struct {
	StaffCount    int     `json:"staff_count"   yaml:"staff_count"`
	Departure     string  `json:"departure"     yaml:"departure"`
	Destination   string  `json:"destination"   yaml:"destination"`
	DistanceKm    float64 `json:"distance_km"   yaml:"distance_km"`
	TravelMode    string  `json:"travel_mode"   yaml:"travel_mode"`
	Accommodation string  `json:"accommodation" yaml:"accommodation"`
}

// Material is the wire form of [scoring.MaterialEntry].
//
// Type is either a predefined material name or CustomMaterialType.
type Material struct {
	Type             string `json:"type"                        yaml:"type"`
	Quantity         int    `json:"quantity"                    yaml:"quantity"`
	CustomName       string `json:"custom_name,omitempty"       yaml:"custom_name,omitempty"`
	CustomWeight     int    `json:"custom_weight,omitempty"     yaml:"custom_weight,omitempty"`
	CustomRecyclable bool   `json:"custom_recyclable,omitempty" yaml:"custom_recyclable,omitempty"`
}

// FieldError is one validation problem of a Document. It matches ErrInvalidCampaign with [errors.Is].
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidCampaign
}

// FieldErrors collects the field errors joined into err.
func FieldErrors(err error) []*FieldError {
	var fieldErrs []*FieldError
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) { //nolint:errorlint // walking the tree ourselves.
		case nil:
		case *FieldError:
			fieldErrs = append(fieldErrs, e)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(e.Unwrap())
		}
	}
	walk(err)
	return fieldErrs
}

type validator struct {
	errs []error
}

func (v *validator) fail(field, format string, args ...any) {
	v.errs = append(v.errs, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Snapshot validates the document and converts it to the engine's input.
//
// All problems are reported at once. Travel mode spellings are canonicalised; unknown modes pass through since the
// emission factor table decides how to score them.
func (d Document) Snapshot() (scoring.Campaign, error) {
	var v validator
	c := scoring.Campaign{
		Name:               strings.TrimSpace(d.Name),
		DurationDays:       d.DurationDays,
		TravelGroups:       make([]scoring.TravelGroup, 0, len(d.StaffGroups)),
		Materials:          make([]scoring.MaterialEntry, 0, len(d.Materials)),
		LocalVendorPercent: 0,
		GovernanceChecks:   [scoring.ChecklistLength]bool{},
		OperationsChecks:   [scoring.ChecklistLength]bool{},
	}

	if d.DurationDays < 1 {
		v.fail("duration_days", "must be at least 1")
	}

	for i, g := range d.StaffGroups {
		field := fmt.Sprintf("staff_groups[%d]", i)
		if g.StaffCount < 1 {
			v.fail(field+".staff_count", "must be at least 1")
		}
		if g.DistanceKm < 0 {
			v.fail(field+".distance_km", "must not be negative")
		}
		mode, _ := scoring.ParseTravelMode(g.TravelMode)
		if mode == "" {
			v.fail(field+".travel_mode", "is required")
		}
		accommodation, ok := scoring.ParseAccommodation(g.Accommodation)
		if !ok {
			v.fail(field+".accommodation", "unknown accommodation %q", g.Accommodation)
		}
		c.TravelGroups = append(c.TravelGroups, scoring.TravelGroup{
			StaffCount:    g.StaffCount,
			Departure:     strings.TrimSpace(g.Departure),
			Destination:   strings.TrimSpace(g.Destination),
			DistanceKm:    g.DistanceKm,
			Mode:          mode,
			Accommodation: accommodation,
		})
	}

	for i, m := range d.Materials {
		field := fmt.Sprintf("materials[%d]", i)
		if m.Quantity < 0 {
			v.fail(field+".quantity", "must not be negative")
		}
		entry := scoring.MaterialEntry{
			Name:             strings.TrimSpace(m.Type),
			Custom:           false,
			Quantity:         m.Quantity,
			CustomWeight:     0,
			CustomRecyclable: false,
		}
		if entry.Name == CustomMaterialType {
			entry.Custom = true
			entry.Name = strings.TrimSpace(m.CustomName)
			entry.CustomWeight = m.CustomWeight
			entry.CustomRecyclable = m.CustomRecyclable
			if entry.Name == "" {
				v.fail(field+".custom_name", "is required for custom materials")
			}
			if m.CustomWeight != 0 && (m.CustomWeight < MinCustomWeight || m.CustomWeight > MaxCustomWeight) {
				v.fail(field+".custom_weight", "must be between %d and %d", MinCustomWeight, MaxCustomWeight)
			}
		} else if entry.Name == "" {
			v.fail(field+".type", "is required")
		}
		c.Materials = append(c.Materials, entry)
	}

	if d.LocalVendorPercent != nil && (d.UsesLocalVendors == nil || *d.UsesLocalVendors) {
		c.LocalVendorPercent = *d.LocalVendorPercent
		if c.LocalVendorPercent < 0 || c.LocalVendorPercent > MaxVendorPercent {
			v.fail("local_vendor_percent", "must be between 0 and %d", MaxVendorPercent)
		}
	}

	c.GovernanceChecks = checklist(&v, "governance_checks", d.GovernanceChecks)
	c.OperationsChecks = checklist(&v, "operations_checks", d.OperationsChecks)

	if len(v.errs) > 0 {
		return scoring.Campaign{}, errors.Join(v.errs...)
	}
	return c, nil
}

func checklist(v *validator, field string, answers []bool) [scoring.ChecklistLength]bool {
	var checks [scoring.ChecklistLength]bool
	if answers == nil {
		return checks
	}
	if len(answers) != scoring.ChecklistLength {
		v.fail(field, "must have exactly %d answers, got %d", scoring.ChecklistLength, len(answers))
		return checks
	}
	copy(checks[:], answers)
	return checks
}
