package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"roombook-backend/models"
)

// FileStore persists the booking list as a JSON array in a single file,
// mirroring the browser local-storage model: the whole collection is
// replaced on every change, so there is no partial-write hazard. Dates
// round-trip through RFC 3339 and compare equal after reload.
type FileStore struct {
	mem  *MemoryStore
	path string
}

// OpenFileStore loads bookings from path. A missing file starts from the
// seed data; an unreadable or corrupt file is logged and also falls back to
// the seed, never failing startup.
func OpenFileStore(path string, seed []models.Booking) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	bookings := seed
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// first run, keep seed
	case err != nil:
		log.Printf("⚠️  could not read booking store %s: %v; starting from sample data", path, err)
	default:
		var stored []models.Booking
		if jerr := json.Unmarshal(data, &stored); jerr != nil {
			log.Printf("⚠️  corrupt booking store %s: %v; starting from sample data", path, jerr)
		} else {
			bookings = stored
		}
	}

	s := &FileStore{mem: NewMemoryStore(bookings), path: path}
	if err := s.flush(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Create(ctx context.Context, b models.Booking) error {
	if err := s.mem.Create(ctx, b); err != nil {
		return err
	}
	return s.flush()
}

func (s *FileStore) Get(ctx context.Context, id string) (models.Booking, error) {
	return s.mem.Get(ctx, id)
}

func (s *FileStore) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	return s.mem.List(ctx, f)
}

func (s *FileStore) UpdateStatus(ctx context.Context, id, status string) (models.Booking, error) {
	b, err := s.mem.UpdateStatus(ctx, id, status)
	if err != nil {
		return models.Booking{}, err
	}
	return b, s.flush()
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := s.mem.Delete(ctx, id); err != nil {
		return err
	}
	return s.flush()
}

func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.mem.snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write bookings: %w", err)
	}
	return os.Rename(tmp, s.path)
}
