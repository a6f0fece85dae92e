package config

import (
	"time"

	"gorm.io/datatypes"

	"roombook-backend/models"
)

// DefaultRooms returns the built-in room catalog with capability flags
// derived. Used to serve the catalog directly and to seed an empty rooms
// table.
func DefaultRooms() []models.Room {
	rooms := []models.Room{
		{
			ID:          "auditorium",
			Name:        "Auditorium",
			Description: "Large presentation space with state-of-the-art audio-visual equipment",
			Capacity:    200,
			HourlyRate:  150,
			Amenities:   datatypes.JSONSlice[string]{"Projector", "Sound System", "Stage", "Microphone", "AC", "WiFi"},
		},
		{
			ID:          "library",
			Name:        "Library",
			Description: "Quiet study space perfect for focused work and small meetings",
			Capacity:    50,
			HourlyRate:  75,
			Amenities:   datatypes.JSONSlice[string]{"WiFi", "Whiteboard", "AC", "Quiet Zone", "Study Tables"},
		},
		{
			ID:          "grounds",
			Name:        "Grounds",
			Description: "Outdoor space ideal for team building and casual gatherings",
			Capacity:    300,
			HourlyRate:  200,
			Amenities:   datatypes.JSONSlice[string]{"Outdoor", "Parking", "Catering Area", "Open Space", "Garden"},
		},
	}
	for i := range rooms {
		rooms[i].DeriveCapabilities()
	}
	return rooms
}

// DefaultTimeSlots is the fixed daily slot table: seven one-hour slots,
// 09:00 to 17:00 with a midday break. The slot count is the denominator for
// density and occupancy figures.
func DefaultTimeSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{ID: "1", StartTime: "09:00", EndTime: "10:00"},
		{ID: "2", StartTime: "10:00", EndTime: "11:00"},
		{ID: "3", StartTime: "11:00", EndTime: "12:00"},
		{ID: "4", StartTime: "13:00", EndTime: "14:00"},
		{ID: "5", StartTime: "14:00", EndTime: "15:00"},
		{ID: "6", StartTime: "15:00", EndTime: "16:00"},
		{ID: "7", StartTime: "16:00", EndTime: "17:00"},
	}
}

// SampleBookings seeds the demo stores so the calendar isn't empty on
// first run.
func SampleBookings() []models.Booking {
	now := time.Now().UTC()
	return []models.Booking{
		{
			ID:             "sample-1",
			RoomID:         "auditorium",
			Date:           now,
			SlotID:         "2",
			RequesterName:  "John Smith",
			RequesterEmail: "john.smith@company.com",
			Purpose:        "Quarterly team presentation and review meeting",
			Attendees:      45,
			Status:         models.StatusApproved,
			Notes:          "Need microphone and projector setup",
			CreatedAt:      now.AddDate(0, 0, -1),
			UpdatedAt:      now.AddDate(0, 0, -1),
		},
		{
			ID:             "sample-2",
			RoomID:         "library",
			Date:           now.AddDate(0, 0, 1),
			SlotID:         "4",
			RequesterName:  "Sarah Johnson",
			RequesterEmail: "sarah.johnson@company.com",
			Purpose:        "Book club meeting and discussion",
			Attendees:      12,
			Status:         models.StatusPending,
			Notes:          "Prefer quiet corner area",
			CreatedAt:      now.Add(-time.Hour),
			UpdatedAt:      now.Add(-time.Hour),
		},
	}
}
