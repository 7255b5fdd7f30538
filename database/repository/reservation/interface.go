package reservationRepo

import (
	"context"
	"errors"

	"eventoz/models"
)

// ErrConflict is returned by Create when the reservation would overlap
// an existing active reservation for the same service and date.
var ErrConflict = errors.New("reservation conflicts with an existing booking")

// ErrNotFound is returned when no reservation matches the given filter.
var ErrNotFound = errors.New("reservation not found")

type ReservationRepository interface {
	// Create inserts the reservation inside a transaction that re-checks
	// for overlapping active reservations first. This is the storage-level
	// double-booking guard: the availability engine checks, the store
	// enforces.
	Create(ctx context.Context, reservation *models.Reservation) error

	GetByID(id string) (*models.Reservation, error)

	// ListActive returns pending and confirmed reservations for a service
	// on one date. Cancelled and completed reservations never reach the
	// availability engine.
	ListActive(serviceID, date string) ([]models.Reservation, error)

	ListByService(serviceID string) ([]models.Reservation, error)
	ListByEvent(eventID string) ([]models.Reservation, error)

	// UpdateStatus moves a reservation from one status to another. It
	// returns ErrNotFound when no reservation holds the expected current
	// status, which doubles as the transition guard at the storage level.
	UpdateStatus(id, from, to string) error
}
