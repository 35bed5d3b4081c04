package bookings

import (
	"errors"

	"partyplan/models"
)

// ErrNotFound is returned when no booking matches the given ID (or the
// booking is not owned by the requesting user).
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByIDForUser(id, userID string) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	ListAllAdmin() ([]models.AdminBookingRow, error)
	UpdateStatus(id, status string) error
}
