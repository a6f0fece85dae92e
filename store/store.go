// Package store provides the booking repository. The engine never touches
// it: callers load a snapshot with List and pass it into the pure
// functions, so swapping drivers cannot change scoring behavior.
package store

import (
	"context"

	"roombook-backend/models"
)

// Store is the booking repository interface. Implementations must return
// copies from List so callers hold an immutable snapshot.
type Store interface {
	Create(ctx context.Context, b models.Booking) error
	Get(ctx context.Context, id string) (models.Booking, error)
	List(ctx context.Context, f models.BookingFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (models.Booking, error)
	Delete(ctx context.Context, id string) error
}
