package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"roombook-backend/apperr"
	"roombook-backend/config"
	"roombook-backend/models"
	"roombook-backend/store"
)

func newTestService() *BookingService {
	return NewBookingService(store.NewMemoryStore(nil), config.DefaultRooms(), config.DefaultTimeSlots())
}

func validInput(date time.Time) CreateBookingInput {
	return CreateBookingInput{
		RoomID:         "auditorium",
		Date:           date,
		SlotID:         "2",
		RequesterName:  "Dana",
		RequesterEmail: "dana@example.com",
		Purpose:        "team presentation",
		Attendees:      40,
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"missing room", func(in *CreateBookingInput) { in.RoomID = "" }},
		{"missing slot", func(in *CreateBookingInput) { in.SlotID = "" }},
		{"zero date", func(in *CreateBookingInput) { in.Date = time.Time{} }},
		{"blank name", func(in *CreateBookingInput) { in.RequesterName = "   " }},
		{"blank email", func(in *CreateBookingInput) { in.RequesterEmail = "" }},
		{"zero attendees", func(in *CreateBookingInput) { in.Attendees = 0 }},
		{"unknown room", func(in *CreateBookingInput) { in.RoomID = "penthouse" }},
		{"unknown slot", func(in *CreateBookingInput) { in.SlotID = "99" }},
	}

	svc := newTestService()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput(day)
			tc.mutate(&in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("want ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreatePendingBooking(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	in := validInput(day)
	in.RequesterName = "  Dana  "
	b, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID == "" {
		t.Error("want generated id")
	}
	if b.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", b.Status)
	}
	if b.RequesterName != "Dana" {
		t.Errorf("requester name not trimmed: %q", b.RequesterName)
	}

	stored, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.RoomID != "auditorium" || stored.SlotID != "2" {
		t.Errorf("stored booking mismatch: %+v", stored)
	}
}

func TestCreateOverCapacityAllowed(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	in := validInput(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	in.RoomID = "library" // capacity 50
	in.Attendees = 120
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("over-capacity request should still create: %v", err)
	}
}

func TestCreateConflictsWithApprovedOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	first, err := svc.Create(ctx, validInput(day))
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	// A competing pending request for the same room, day and slot is fine.
	if _, err := svc.Create(ctx, validInput(day)); err != nil {
		t.Fatalf("second pending create: %v", err)
	}

	if _, err := svc.Approve(ctx, first.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	// Once approved, the triple is occupied.
	if _, err := svc.Create(ctx, validInput(day)); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("create against approved: want ErrConflict, got %v", err)
	}

	// Other slots and other days stay open.
	other := validInput(day)
	other.SlotID = "3"
	if _, err := svc.Create(ctx, other); err != nil {
		t.Errorf("other slot: %v", err)
	}
	nextDay := validInput(day.AddDate(0, 0, 1))
	if _, err := svc.Create(ctx, nextDay); err != nil {
		t.Errorf("other day: %v", err)
	}
}

func TestApproveConflictBetweenPendings(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	first, err := svc.Create(ctx, validInput(day))
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(ctx, validInput(day))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Approve(ctx, first.ID); err != nil {
		t.Fatalf("first approval: %v", err)
	}
	if _, err := svc.Approve(ctx, second.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("second approval: want ErrConflict, got %v", err)
	}

	// The loser stays pending and can still be rejected.
	b, err := svc.Get(ctx, second.ID)
	if err != nil {
		t.Fatal(err)
	}
	if b.Status != models.StatusPending {
		t.Errorf("loser status = %q, want pending", b.Status)
	}
	rejected, err := svc.Reject(ctx, second.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != models.StatusRejected {
		t.Errorf("status = %q, want rejected", rejected.Status)
	}
}

func TestApproveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	b, err := svc.Create(ctx, validInput(day))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Approve(ctx, b.ID); err != nil {
		t.Fatal(err)
	}
	again, err := svc.Approve(ctx, b.ID)
	if err != nil {
		t.Fatalf("re-approve: %v", err)
	}
	if again.Status != models.StatusApproved {
		t.Errorf("status = %q, want approved", again.Status)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	b, err := svc.Create(ctx, validInput(day))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Approve(ctx, b.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Cancel(ctx, b.ID); err != nil {
		t.Fatal(err)
	}

	// Cancelled bookings no longer occupy the slot.
	if _, err := svc.Create(ctx, validInput(day)); err != nil {
		t.Errorf("slot should reopen after cancel: %v", err)
	}
}

func TestDaySlotsAvailability(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	b, err := svc.Create(ctx, validInput(day))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Approve(ctx, b.ID); err != nil {
		t.Fatal(err)
	}

	slots, err := svc.DaySlots(ctx, "auditorium", day)
	if err != nil {
		t.Fatalf("day slots: %v", err)
	}
	if len(slots) != 7 {
		t.Fatalf("want 7 slots, got %d", len(slots))
	}
	for _, slot := range slots {
		wantAvailable := slot.ID != "2"
		if slot.Available != wantAvailable {
			t.Errorf("slot %s available = %v, want %v", slot.ID, slot.Available, wantAvailable)
		}
	}

	if _, err := svc.DaySlots(ctx, "penthouse", day); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown room: want ErrNotFound, got %v", err)
	}
}

func TestForecastUnknownRoom(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	if _, _, err := svc.Forecast(ctx, "penthouse", time.Now()); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestForecastWindow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < 3; offset++ {
		b, err := svc.Create(ctx, validInput(day.AddDate(0, 0, offset)))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := svc.Approve(ctx, b.ID); err != nil {
			t.Fatal(err)
		}
	}
	// Pending requests still count as upcoming demand.
	if _, err := svc.Create(ctx, validInput(day.AddDate(0, 0, 4))); err != nil {
		t.Fatal(err)
	}

	fc, outlook, err := svc.Forecast(ctx, "auditorium", day)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if fc.UpcomingBookings != 4 {
		t.Errorf("upcoming = %d, want 4", fc.UpcomingBookings)
	}
	if fc.OccupancyRate != 8 { // round(100*4/49)
		t.Errorf("occupancy = %d, want 8", fc.OccupancyRate)
	}
	if fc.PeakTime != "10:00 - 11:00" {
		t.Errorf("peak = %q", fc.PeakTime)
	}
	if len(outlook) != 7 {
		t.Errorf("outlook days = %d, want 7", len(outlook))
	}
}
