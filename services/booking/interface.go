package booking

import "partyplan/models"

// BookingService defines the booking record manager operations.
type BookingService interface {
	Create(identity models.Identity, input models.BookingInput) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	GetForUser(id, userID string) (*models.Booking, error)
	CancelOwn(id, userID string) (*models.Booking, error)

	// Admin operations.
	ListAll() ([]models.AdminBookingRow, error)
	SetStatus(id, status string) error
}
