package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"roombook-backend/apperr"
	"roombook-backend/models"
)

// GormStore is the MySQL-backed repository used when a database is
// configured. Same contract as the in-memory stores.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, b models.Booking) error {
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: booking %s already exists", apperr.ErrConflict, b.ID)
		}
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, id string) (models.Booking, error) {
	var b models.Booking
	err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Booking{}, fmt.Errorf("%w: booking %s", apperr.ErrNotFound, id)
	}
	if err != nil {
		return models.Booking{}, fmt.Errorf("load booking: %w", err)
	}
	return b, nil
}

func (s *GormStore) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	q := s.db.WithContext(ctx).Model(&models.Booking{}).Order("created_at")
	if f.RoomID != "" {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() {
		// Day-granular range, consistent with the in-memory filter.
		q = q.Where("date >= ? AND date < ?", models.DayOf(f.StartDate), models.DayOf(f.EndDate).AddDate(0, 0, 1))
	}
	var out []models.Booking
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (s *GormStore) UpdateStatus(ctx context.Context, id, status string) (models.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.db.WithContext(ctx).Model(&b).Update("status", status).Error; err != nil {
		return models.Booking{}, fmt.Errorf("update booking status: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: booking %s", apperr.ErrNotFound, id)
	}
	return nil
}
