// Package engine holds the room-recommendation and occupancy-forecast
// heuristics. Every function here is pure: it takes the room catalog and a
// booking snapshot as arguments, touches no storage, and is safe to call on
// every request.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"roombook-backend/apperr"
	"roombook-backend/models"
)

// Fit buckets a numeric suggestion score. Poor rooms stay in the list; a
// consuming UI may disable selecting them but the engine never drops a room.
type Fit string

const (
	FitPerfect    Fit = "perfect"
	FitGood       Fit = "good"
	FitAcceptable Fit = "acceptable"
	FitPoor       Fit = "poor"
)

type Suggestion struct {
	RoomID  string   `json:"roomId"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
	Fit     Fit      `json:"fit"`
}

// Reason joins the individual reasons into the single sentence form the
// older API clients expect.
func (s Suggestion) Reason() string {
	if len(s.Reasons) == 0 {
		return "Standard room."
	}
	return strings.Join(s.Reasons, ". ") + "."
}

// eventCategory maps free-text keywords to preferred amenities. The table
// is evaluated in order and the first category with a keyword hit wins.
type eventCategory struct {
	name      string
	keywords  []string
	amenities []string
}

var eventCategories = []eventCategory{
	{"presentation", []string{"presentation", "demo", "showcase", "pitch"}, []string{"Projector", "WiFi"}},
	{"conference", []string{"conference", "seminar", "workshop"}, []string{"Projector", "WiFi", "Coffee"}},
	{"study", []string{"study", "research", "reading", "quiet", "focus"}, []string{"WiFi"}},
	{"social", []string{"party", "celebration", "gathering", "social", "event"}, []string{"WiFi", "Parking"}},
	{"outdoor", []string{"outdoor", "team building", "sports", "activities"}, []string{"Parking"}},
	{"meeting", []string{"meeting", "discussion", "brainstorm", "planning"}, []string{"WiFi", "Projector"}},
	{"interview", []string{"interview", "hiring", "recruitment"}, []string{"WiFi"}},
	{"training", []string{"training", "course", "lesson", "education"}, []string{"Projector", "WiFi", "Coffee"}},
}

var generalCategory = eventCategory{name: "general"}

// detectCategory classifies a free-text event description. Unmatched text
// falls back to "general", which carries no amenity preferences.
func detectCategory(description string) eventCategory {
	lower := strings.ToLower(description)
	for _, cat := range eventCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return generalCategory
}

// capacityTier awards points by attendee/capacity ratio. The dominant
// scoring factor: roughly 40 of the ~100 achievable points.
type capacityTier struct {
	maxRatio float64
	points   int
	label    string
}

var capacityTiers = []capacityTier{
	{0.5, 40, "Plenty of space"},
	{0.8, 30, "Good fit"},
	{1.0, 20, "At capacity limit"},
}

// bonusRule is a category-specific bonus for a room archetype. Rules match
// on capability flags, never on room IDs, so they generalize to any catalog.
type bonusRule struct {
	categories []string
	points     int
	reason     string
	applies    func(room models.Room, attendees int) bool
}

var bonusRules = []bonusRule{
	{[]string{"presentation", "conference"}, 25, "Large presentation space",
		func(r models.Room, _ int) bool { return r.SupportsLargePresentation }},
	{[]string{"study"}, 25, "Quiet study environment",
		func(r models.Room, _ int) bool { return r.QuietStudySpace }},
	{[]string{"outdoor", "social"}, 25, "Outdoor space for activities",
		func(r models.Room, _ int) bool { return r.OutdoorSpace }},
	{[]string{"meeting"}, 15, "Intimate meeting space",
		func(r models.Room, attendees int) bool { return attendees <= 20 && r.Capacity <= 60 }},
}

// SuggestRooms scores every room in the catalog for the described event and
// returns suggestions sorted descending by score. Ties keep catalog order.
// Over-capacity rooms are flagged, never excluded.
func SuggestRooms(eventDescription string, attendees int, rooms []models.Room) ([]Suggestion, error) {
	if strings.TrimSpace(eventDescription) == "" {
		return nil, fmt.Errorf("%w: event description is required", apperr.ErrValidation)
	}
	if attendees < 1 {
		return nil, fmt.Errorf("%w: attendees must be at least 1", apperr.ErrValidation)
	}
	if len(rooms) == 0 {
		return []Suggestion{}, nil
	}

	cat := detectCategory(eventDescription)
	out := make([]Suggestion, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, scoreRoom(room, cat, attendees))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

func scoreRoom(room models.Room, cat eventCategory, attendees int) Suggestion {
	score := 0
	var reasons []string

	// Capacity tier.
	ratio := float64(attendees) / float64(room.Capacity)
	matched := false
	for _, tier := range capacityTiers {
		if ratio <= tier.maxRatio {
			score += tier.points
			reasons = append(reasons, fmt.Sprintf("%s (%d/%d capacity)", tier.label, attendees, room.Capacity))
			matched = true
			break
		}
	}
	if !matched {
		reasons = append(reasons, fmt.Sprintf("Exceeds capacity (%d/%d)", attendees, room.Capacity))
	}

	// Amenity matches against the category's preferred set.
	var matchedAmenities []string
	for _, want := range cat.amenities {
		if room.HasAmenity(want) {
			matchedAmenities = append(matchedAmenities, want)
		}
	}
	if len(matchedAmenities) > 0 {
		score += 10 * len(matchedAmenities)
		reasons = append(reasons, "Has "+strings.Join(matchedAmenities, ", "))
	}

	// Archetype bonuses.
	for _, rule := range bonusRules {
		if !containsString(rule.categories, cat.name) {
			continue
		}
		if rule.applies(room, attendees) {
			score += rule.points
			reasons = append(reasons, rule.reason)
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return Suggestion{
		RoomID:  room.ID,
		Score:   score,
		Reasons: reasons,
		Fit:     classifyFit(score),
	}
}

func classifyFit(score int) Fit {
	switch {
	case score >= 70:
		return FitPerfect
	case score >= 50:
		return FitGood
	case score >= 30:
		return FitAcceptable
	default:
		return FitPoor
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
