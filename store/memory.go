package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"roombook-backend/apperr"
	"roombook-backend/models"
)

// MemoryStore keeps bookings in insertion order behind a mutex. It backs
// the demo deployment and the unit tests.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewMemoryStore(seed []models.Booking) *MemoryStore {
	s := &MemoryStore{}
	s.bookings = append(s.bookings, seed...)
	return s
}

func (s *MemoryStore) Create(_ context.Context, b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.bookings {
		if existing.ID == b.ID {
			return fmt.Errorf("%w: booking %s already exists", apperr.ErrConflict, b.ID)
		}
	}
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, fmt.Errorf("%w: booking %s", apperr.ErrNotFound, id)
}

func (s *MemoryStore) List(_ context.Context, f models.BookingFilter) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id, status string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			s.bookings[i].UpdatedAt = time.Now().UTC()
			return s.bookings[i], nil
		}
	}
	return models.Booking{}, fmt.Errorf("%w: booking %s", apperr.ErrNotFound, id)
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: booking %s", apperr.ErrNotFound, id)
}

// snapshot returns a copy of the current list, for the file store's flush.
func (s *MemoryStore) snapshot() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}
