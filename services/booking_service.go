package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"roombook-backend/apperr"
	"roombook-backend/engine"
	"roombook-backend/models"
	"roombook-backend/store"
)

// BookingService wraps the booking store with validation, the conflict
// gates and the approval workflow. The engine stays pure; this is where
// snapshots are loaded and passed into it.
type BookingService struct {
	Store store.Store
	Rooms []models.Room
	Slots []models.TimeSlot
}

func NewBookingService(st store.Store, rooms []models.Room, slots []models.TimeSlot) *BookingService {
	return &BookingService{Store: st, Rooms: rooms, Slots: slots}
}

type CreateBookingInput struct {
	RoomID         string    `json:"roomId"`
	Date           time.Time `json:"date"`
	SlotID         string    `json:"timeSlotId"`
	RequesterName  string    `json:"requesterName"`
	RequesterEmail string    `json:"requesterEmail"`
	Purpose        string    `json:"purpose"`
	Attendees      int       `json:"attendees"`
	Notes          string    `json:"notes"`
}

// Create validates the request and appends a pending booking. It rejects
// only when an approved booking already occupies the exact (room, day,
// slot) triple; a second pending request for the same triple is allowed and
// resolved at approval time. Attendee counts above room capacity are
// soft-allowed: the scorer flags them, creation does not block.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (models.Booking, error) {
	if strings.TrimSpace(in.RoomID) == "" || in.SlotID == "" || in.Date.IsZero() {
		return models.Booking{}, fmt.Errorf("%w: roomId, date and timeSlotId are required", apperr.ErrValidation)
	}
	if strings.TrimSpace(in.RequesterName) == "" || strings.TrimSpace(in.RequesterEmail) == "" {
		return models.Booking{}, fmt.Errorf("%w: requester name and email are required", apperr.ErrValidation)
	}
	if in.Attendees < 1 {
		return models.Booking{}, fmt.Errorf("%w: attendees must be at least 1", apperr.ErrValidation)
	}
	if _, err := s.RoomByID(in.RoomID); err != nil {
		return models.Booking{}, fmt.Errorf("%w: unknown room %q", apperr.ErrValidation, in.RoomID)
	}
	if _, err := s.slotByID(in.SlotID); err != nil {
		return models.Booking{}, fmt.Errorf("%w: unknown time slot %q", apperr.ErrValidation, in.SlotID)
	}

	snapshot, err := s.Store.List(ctx, models.BookingFilter{RoomID: in.RoomID})
	if err != nil {
		return models.Booking{}, err
	}
	if !engine.IsAvailable(in.RoomID, in.Date, in.SlotID, snapshot) {
		return models.Booking{}, fmt.Errorf("%w: time slot already booked", apperr.ErrConflict)
	}

	now := time.Now().UTC()
	b := models.Booking{
		ID:             uuid.NewString(),
		RoomID:         in.RoomID,
		Date:           in.Date,
		SlotID:         in.SlotID,
		RequesterName:  strings.TrimSpace(in.RequesterName),
		RequesterEmail: strings.TrimSpace(in.RequesterEmail),
		Purpose:        strings.TrimSpace(in.Purpose),
		Attendees:      in.Attendees,
		Status:         models.StatusPending,
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Store.Create(ctx, b); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// Approve moves a pending booking to approved. The conflict check applies
// here: if another approved booking already holds the slot, approval fails
// and the booking stays pending.
func (s *BookingService) Approve(ctx context.Context, id string) (models.Booking, error) {
	b, err := s.Store.Get(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	if b.Status == models.StatusApproved {
		return b, nil
	}

	snapshot, err := s.Store.List(ctx, models.BookingFilter{RoomID: b.RoomID})
	if err != nil {
		return models.Booking{}, err
	}
	if !engine.IsAvailable(b.RoomID, b.Date, b.SlotID, snapshot) {
		return models.Booking{}, fmt.Errorf("%w: slot already held by an approved booking", apperr.ErrConflict)
	}
	return s.Store.UpdateStatus(ctx, id, models.StatusApproved)
}

func (s *BookingService) Reject(ctx context.Context, id string) (models.Booking, error) {
	return s.Store.UpdateStatus(ctx, id, models.StatusRejected)
}

// Cancel keeps the record with a terminal status; nothing is hard-deleted
// in the primary flow.
func (s *BookingService) Cancel(ctx context.Context, id string) (models.Booking, error) {
	return s.Store.UpdateStatus(ctx, id, models.StatusCancelled)
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

func (s *BookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	return s.Store.Get(ctx, id)
}

func (s *BookingService) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	return s.Store.List(ctx, f)
}

// DaySlots returns the slot table with availability computed for one room
// and day.
func (s *BookingService) DaySlots(ctx context.Context, roomID string, date time.Time) ([]models.TimeSlot, error) {
	if _, err := s.RoomByID(roomID); err != nil {
		return nil, err
	}
	snapshot, err := s.Store.List(ctx, models.BookingFilter{RoomID: roomID})
	if err != nil {
		return nil, err
	}
	return engine.DaySlots(roomID, date, s.Slots, snapshot), nil
}

// Forecast builds the 7-day demand summary and weekly outlook for a room.
func (s *BookingService) Forecast(ctx context.Context, roomID string, referenceDate time.Time) (engine.Forecast, []engine.DayDensity, error) {
	if _, err := s.RoomByID(roomID); err != nil {
		return engine.Forecast{}, nil, err
	}
	snapshot, err := s.Store.List(ctx, models.BookingFilter{RoomID: roomID})
	if err != nil {
		return engine.Forecast{}, nil, err
	}
	fc := engine.BuildForecast(roomID, snapshot, referenceDate, s.Slots)
	outlook := engine.WeekOutlook(roomID, snapshot, referenceDate, len(s.Slots))
	return fc, outlook, nil
}

// ForecastFromSnapshot builds the demand summary from a caller-provided
// booking snapshot; the local-storage client flow posts its own list.
func (s *BookingService) ForecastFromSnapshot(roomID string, bookings []models.Booking, referenceDate time.Time) engine.Forecast {
	return engine.BuildForecast(roomID, bookings, referenceDate, s.Slots)
}

func (s *BookingService) RoomByID(id string) (models.Room, error) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Room{}, fmt.Errorf("%w: room %s", apperr.ErrNotFound, id)
}

func (s *BookingService) slotByID(id string) (models.TimeSlot, error) {
	for _, slot := range s.Slots {
		if slot.ID == id {
			return slot, nil
		}
	}
	return models.TimeSlot{}, fmt.Errorf("%w: time slot %s", apperr.ErrNotFound, id)
}
