package engine

import (
	"math"
	"time"

	"roombook-backend/models"
)

// Density classifies how booked a room's day is. Only approved bookings
// count; the classifier is a pure function of the date and must be safe to
// recompute on every render.
type Density string

const (
	DensityNone   Density = "none"
	DensityLow    Density = "low"
	DensityMedium Density = "medium"
	DensityHigh   Density = "high"
)

// Trend labels 7-day demand derived from the occupancy rate.
const (
	TrendHigh   = "High Demand"
	TrendSteady = "Steady"
	TrendLow    = "Low Demand"
)

// DefaultPeakTime is reported when no bookings fall in the forecast window.
const DefaultPeakTime = "2:00 PM - 3:00 PM"

// ForecastWindowDays is the length of the demand forecast.
const ForecastWindowDays = 7

type Forecast struct {
	UpcomingBookings int    `json:"upcomingBookings"`
	OccupancyRate    int    `json:"occupancyRate"`
	PeakTime         string `json:"peakTime"`
	Trend            string `json:"trend"`
}

// DayDensity is one calendar cell of the weekly outlook.
type DayDensity struct {
	Date        time.Time `json:"date"`
	BookedSlots int       `json:"bookedSlots"`
	TotalSlots  int       `json:"totalSlots"`
	Level       Density   `json:"level"`
}

// ClassifyDensity buckets a room's day by the fraction of its slots held by
// approved bookings.
func ClassifyDensity(roomID string, date time.Time, bookings []models.Booking, slotsPerDay int) Density {
	booked := approvedSlotsOn(roomID, date, bookings)
	return densityLevel(booked, slotsPerDay)
}

func densityLevel(booked, slotsPerDay int) Density {
	if slotsPerDay <= 0 {
		return DensityNone
	}
	density := float64(booked) / float64(slotsPerDay)
	switch {
	case density >= 0.8:
		return DensityHigh
	case density >= 0.4:
		return DensityMedium
	case density > 0:
		return DensityLow
	default:
		return DensityNone
	}
}

func approvedSlotsOn(roomID string, date time.Time, bookings []models.Booking) int {
	n := 0
	for _, b := range bookings {
		if b.RoomID == roomID && b.Status == models.StatusApproved && models.SameDay(b.Date, date) {
			n++
		}
	}
	return n
}

// WeekOutlook returns per-day densities for the 7 days starting at `start`,
// used to color-code calendar cells.
func WeekOutlook(roomID string, bookings []models.Booking, start time.Time, slotsPerDay int) []DayDensity {
	out := make([]DayDensity, 0, ForecastWindowDays)
	day := models.DayOf(start)
	for i := 0; i < ForecastWindowDays; i++ {
		d := day.AddDate(0, 0, i)
		booked := approvedSlotsOn(roomID, d, bookings)
		out = append(out, DayDensity{
			Date:        d,
			BookedSlots: booked,
			TotalSlots:  slotsPerDay,
			Level:       densityLevel(booked, slotsPerDay),
		})
	}
	return out
}

// BuildForecast summarizes demand for a room over the 7 days from
// referenceDate: count of upcoming bookings, occupancy rate against the
// slot table, the busiest slot (first seen wins ties) and a trend label.
func BuildForecast(roomID string, bookings []models.Booking, referenceDate time.Time, slots []models.TimeSlot) Forecast {
	from := models.DayOf(referenceDate)
	to := from.AddDate(0, 0, ForecastWindowDays)

	slotLabels := make(map[string]string, len(slots))
	for _, s := range slots {
		slotLabels[s.ID] = s.Label()
	}

	var upcoming []models.Booking
	for _, b := range bookings {
		if b.RoomID != roomID {
			continue
		}
		day := models.DayOf(b.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		upcoming = append(upcoming, b)
	}

	totalSlots := ForecastWindowDays * len(slots)
	rate := 0
	if totalSlots > 0 {
		rate = int(math.Round(float64(len(upcoming)) / float64(totalSlots) * 100))
	}

	// Busiest slot: counted in booking order so the first slot to reach the
	// max keeps it.
	peak := DefaultPeakTime
	counts := map[string]int{}
	best := 0
	for _, b := range upcoming {
		label, ok := slotLabels[b.SlotID]
		if !ok {
			continue
		}
		counts[label]++
		if counts[label] > best {
			best = counts[label]
			peak = label
		}
	}

	trend := TrendSteady
	if rate > 70 {
		trend = TrendHigh
	} else if rate < 30 {
		trend = TrendLow
	}

	return Forecast{
		UpcomingBookings: len(upcoming),
		OccupancyRate:    rate,
		PeakTime:         peak,
		Trend:            trend,
	}
}
