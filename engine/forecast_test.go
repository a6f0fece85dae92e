package engine

import (
	"testing"
	"time"

	"roombook-backend/models"
)

func testSlots() []models.TimeSlot {
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

func approvedBooking(roomID string, date time.Time, slotID string) models.Booking {
	return models.Booking{RoomID: roomID, Date: date, SlotID: slotID, Status: models.StatusApproved}
}

func TestClassifyDensityTiers(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		booked int
		want   Density
	}{
		{0, DensityNone},
		{1, DensityLow},    // 1/7 ≈ 0.14
		{2, DensityLow},    // 2/7 ≈ 0.29
		{3, DensityMedium}, // 3/7 ≈ 0.43
		{5, DensityMedium}, // 5/7 ≈ 0.71
		{6, DensityHigh},   // 6/7 ≈ 0.86
		{7, DensityHigh},
	}

	for _, tc := range cases {
		var bookings []models.Booking
		for i := 0; i < tc.booked; i++ {
			bookings = append(bookings, approvedBooking("library", day, testSlots()[i].ID))
		}
		if got := ClassifyDensity("library", day, bookings, 7); got != tc.want {
			t.Errorf("booked=%d: want %q, got %q", tc.booked, tc.want, got)
		}
	}
}

func TestClassifyDensityMonotonic(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rank := map[Density]int{DensityNone: 0, DensityLow: 1, DensityMedium: 2, DensityHigh: 3}

	var bookings []models.Booking
	prev := DensityNone
	for i := 0; i < 7; i++ {
		bookings = append(bookings, approvedBooking("library", day, testSlots()[i].ID))
		got := ClassifyDensity("library", day, bookings, 7)
		if rank[got] < rank[prev] {
			t.Fatalf("density decreased from %q to %q when adding booking %d", prev, got, i+1)
		}
		prev = got
	}
}

func TestClassifyDensityIgnoresPendingAndOtherRooms(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{RoomID: "library", Date: day, SlotID: "1", Status: models.StatusPending},
		{RoomID: "library", Date: day, SlotID: "2", Status: models.StatusRejected},
		approvedBooking("auditorium", day, "3"),
		approvedBooking("library", day.AddDate(0, 0, 1), "4"),
	}
	if got := ClassifyDensity("library", day, bookings, 7); got != DensityNone {
		t.Fatalf("want %q, got %q", DensityNone, got)
	}
}

func TestSevenSingleSlotDaysAreAllLow(t *testing.T) {
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	var bookings []models.Booking
	for i := 0; i < 7; i++ {
		bookings = append(bookings, approvedBooking("library", start.AddDate(0, 0, i), "1"))
	}

	outlook := WeekOutlook("library", bookings, start, 7)
	if len(outlook) != 7 {
		t.Fatalf("want 7 days, got %d", len(outlook))
	}
	for _, day := range outlook {
		if day.BookedSlots != 1 {
			t.Errorf("%s: want 1 booked slot, got %d", day.Date.Format("2006-01-02"), day.BookedSlots)
		}
		if day.Level != DensityLow {
			t.Errorf("%s: want %q, got %q", day.Date.Format("2006-01-02"), DensityLow, day.Level)
		}
	}
}

func TestBuildForecastEmpty(t *testing.T) {
	ref := time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC)
	got := BuildForecast("library", nil, ref, testSlots())

	if got.UpcomingBookings != 0 {
		t.Errorf("want 0 upcoming, got %d", got.UpcomingBookings)
	}
	if got.OccupancyRate != 0 {
		t.Errorf("want rate 0, got %d", got.OccupancyRate)
	}
	if got.PeakTime != DefaultPeakTime {
		t.Errorf("want default peak %q, got %q", DefaultPeakTime, got.PeakTime)
	}
	if got.Trend != TrendLow {
		t.Errorf("want %q, got %q", TrendLow, got.Trend)
	}
}

func TestBuildForecastPeakAndRate(t *testing.T) {
	ref := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		approvedBooking("library", ref, "2"),
		approvedBooking("library", ref.AddDate(0, 0, 1), "2"),
		approvedBooking("library", ref.AddDate(0, 0, 2), "3"),
		{RoomID: "library", Date: ref.AddDate(0, 0, 3), SlotID: "5", Status: models.StatusPending},
		// Outside the 7-day window and other rooms are excluded.
		approvedBooking("library", ref.AddDate(0, 0, 10), "2"),
		approvedBooking("auditorium", ref, "2"),
	}

	got := BuildForecast("library", bookings, ref, testSlots())

	if got.UpcomingBookings != 4 {
		t.Errorf("want 4 upcoming, got %d", got.UpcomingBookings)
	}
	// round(100 * 4 / 49) = 8
	if got.OccupancyRate != 8 {
		t.Errorf("want rate 8, got %d", got.OccupancyRate)
	}
	if got.PeakTime != "10:00 - 11:00" {
		t.Errorf("want peak 10:00 - 11:00, got %q", got.PeakTime)
	}
	if got.Trend != TrendLow {
		t.Errorf("want %q, got %q", TrendLow, got.Trend)
	}
}

func TestBuildForecastPeakFirstSeenWinsTies(t *testing.T) {
	ref := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		approvedBooking("library", ref, "3"),
		approvedBooking("library", ref.AddDate(0, 0, 1), "5"),
	}
	got := BuildForecast("library", bookings, ref, testSlots())
	if got.PeakTime != "11:00 - 12:00" {
		t.Errorf("tie must keep the first-seen slot, got %q", got.PeakTime)
	}
}

func TestBuildForecastTrends(t *testing.T) {
	ref := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	oneSlot := []models.TimeSlot{{ID: "1", StartTime: "09:00", EndTime: "10:00"}}

	build := func(n int) Forecast {
		var bookings []models.Booking
		for i := 0; i < n; i++ {
			bookings = append(bookings, approvedBooking("library", ref.AddDate(0, 0, i%7), "1"))
		}
		return BuildForecast("library", bookings, ref, oneSlot)
	}

	if got := build(6); got.Trend != TrendHigh { // 6/7 ≈ 86%
		t.Errorf("86%% occupancy: want %q, got %q (rate %d)", TrendHigh, got.Trend, got.OccupancyRate)
	}
	if got := build(3); got.Trend != TrendSteady { // 3/7 ≈ 43%
		t.Errorf("43%% occupancy: want %q, got %q (rate %d)", TrendSteady, got.Trend, got.OccupancyRate)
	}
	if got := build(1); got.Trend != TrendLow { // 1/7 ≈ 14%
		t.Errorf("14%% occupancy: want %q, got %q (rate %d)", TrendLow, got.Trend, got.OccupancyRate)
	}
}
