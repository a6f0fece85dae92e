package models

// TimeSlot is one fixed bookable interval within a day. The slot table is
// the domain's granularity of time; there are no sub-slot bookings.
// Available is transient: it is computed per (room, date) query and carries
// no persisted meaning.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
	Available bool   `json:"available"`
}

// Label returns the display form used in forecasts, e.g. "09:00 - 10:00".
func (s TimeSlot) Label() string {
	return s.StartTime + " - " + s.EndTime
}
