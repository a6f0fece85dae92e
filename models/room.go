package models

import (
	"strings"

	"gorm.io/datatypes"
)

// Room is immutable reference data. Records are created at startup (seeded
// from the built-in catalog or the rooms table) and never mutated by the
// scoring engine.
type Room struct {
	ID          string                      `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name        string                      `json:"name" gorm:"type:varchar(100)"`
	Description string                      `json:"description" gorm:"type:text"`
	Capacity    int                         `json:"capacity"`
	HourlyRate  float64                     `json:"hourlyRate,omitempty" gorm:"column:hourly_rate"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities" gorm:"column:amenities"`

	// Capability flags drive the archetype bonus rules. They are derived
	// once from amenities/description when the catalog is loaded, never
	// matched on room IDs.
	SupportsLargePresentation bool `json:"-" gorm:"-"`
	QuietStudySpace           bool `json:"-" gorm:"-"`
	OutdoorSpace              bool `json:"-" gorm:"-"`
}

// HasAmenity reports whether the room carries the given amenity tag,
// ignoring case.
func (r Room) HasAmenity(tag string) bool {
	for _, a := range r.Amenities {
		if strings.EqualFold(a, tag) {
			return true
		}
	}
	return false
}

// DeriveCapabilities fills in the capability flags from the room's
// amenities and description. Call it after loading a room from any source.
func (r *Room) DeriveCapabilities() {
	desc := strings.ToLower(r.Description)

	r.SupportsLargePresentation = r.HasAmenity("Stage") ||
		(r.HasAmenity("Projector") && r.Capacity >= 100) ||
		strings.Contains(desc, "presentation")

	r.QuietStudySpace = r.HasAmenity("Quiet Zone") || r.HasAmenity("Study Tables") ||
		strings.Contains(desc, "quiet") || strings.Contains(desc, "study")

	r.OutdoorSpace = r.HasAmenity("Outdoor") || r.HasAmenity("Outdoor Space") ||
		r.HasAmenity("Garden") || r.HasAmenity("Open Space") ||
		strings.Contains(desc, "outdoor")
}
