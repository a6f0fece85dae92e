package models

import (
	"time"
)

// Booking statuses. New bookings start as pending; only approved bookings
// occupy a slot. Cancel keeps the record around with a terminal status
// instead of deleting it.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	RoomID         string    `json:"roomId" gorm:"column:room_id;index;type:varchar(64)"`
	Date           time.Time `json:"date" gorm:"column:date"`
	SlotID         string    `json:"timeSlotId" gorm:"column:slot_id;type:varchar(16)"`
	RequesterName  string    `json:"requesterName" gorm:"column:requester_name;type:varchar(100)"`
	RequesterEmail string    `json:"requesterEmail" gorm:"column:requester_email;type:varchar(255)"`
	Purpose        string    `json:"purpose" gorm:"type:text"`
	Attendees      int       `json:"attendees"`
	Status         string    `json:"status" gorm:"index;type:varchar(16)"`
	Notes          string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BookingFilter narrows List calls. Zero values mean "no constraint";
// the date range applies only when both ends are set.
type BookingFilter struct {
	RoomID    string
	Status    string
	StartDate time.Time
	EndDate   time.Time
}

// Matches reports whether the booking passes the filter. Date comparison is
// day-granular, matching how the calendar treats dates.
func (f BookingFilter) Matches(b Booking) bool {
	if f.RoomID != "" && b.RoomID != f.RoomID {
		return false
	}
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() {
		day := DayOf(b.Date)
		if day.Before(DayOf(f.StartDate)) || day.After(DayOf(f.EndDate)) {
			return false
		}
	}
	return true
}

// DayOf truncates a timestamp to its calendar day. Time-of-day is ignored
// everywhere bookings are matched against dates.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
