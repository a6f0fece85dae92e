package engine

import (
	"time"

	"roombook-backend/models"
)

// IsAvailable reports whether a slot is free. A slot is unavailable iff an
// approved booking exists for the exact (room, calendar day, slot) triple.
// Pending and rejected bookings never block a slot.
func IsAvailable(roomID string, date time.Time, slotID string, bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.RoomID == roomID && b.SlotID == slotID &&
			b.Status == models.StatusApproved && models.SameDay(b.Date, date) {
			return false
		}
	}
	return true
}

// DaySlots decorates the slot table with availability for one room and day.
// The returned slots are copies; the catalog's table is never mutated.
func DaySlots(roomID string, date time.Time, slots []models.TimeSlot, bookings []models.Booking) []models.TimeSlot {
	out := make([]models.TimeSlot, len(slots))
	for i, s := range slots {
		s.Available = IsAvailable(roomID, date, s.ID, bookings)
		out[i] = s
	}
	return out
}
