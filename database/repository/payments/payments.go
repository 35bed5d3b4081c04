package payments

import (
	"errors"

	"partyplan/models"
)

// ErrNotFound is returned when no payment exists for the given booking.
var ErrNotFound = errors.New("payment not found")

// PaymentRepository defines the interface for payment data access. Payments
// are append-only; there is no update or delete.
type PaymentRepository interface {
	// Insert writes a payment row. It reports false when a payment for the
	// same booking already exists (duplicate webhook delivery).
	Insert(p *models.Payment) (bool, error)
	GetByBookingID(bookingID string) (*models.Payment, error)
}
