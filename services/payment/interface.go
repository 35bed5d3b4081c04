package payment

import (
	"errors"

	"partyplan/models"
)

// ErrBookingNotFound is returned when the booking does not exist or does
// not belong to the caller. Both cases look identical to the client.
var ErrBookingNotFound = errors.New("booking not found or unauthorized")

// CheckoutResult is the outcome of creating a hosted checkout session.
type CheckoutResult struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
	BookingID string `json:"booking_id"`
}

// CheckoutService creates hosted payment sessions for pending bookings.
type CheckoutService interface {
	CreateSession(identity models.Identity, bookingID, successURL, cancelURL string) (*CheckoutResult, error)
}

// SessionParams is everything the payment provider needs for one session.
type SessionParams struct {
	CustomerID         string // existing provider customer, or empty
	CustomerEmail      string // used when CustomerID is empty
	ProductName        string
	ProductDescription string
	AmountCents        int64
	SuccessURL         string
	CancelURL          string
	Metadata           map[string]string
}

// SessionResult carries the provider session identifier and redirect URL.
type SessionResult struct {
	ID  string
	URL string
}

// Gateway abstracts the payment provider for session creation. The concrete
// implementation talks to Stripe; tests substitute a fake.
type Gateway interface {
	FindCustomerIDByEmail(email string) (string, error)
	CreateCheckoutSession(params SessionParams) (*SessionResult, error)
}

// CompletedSession is the reconciler's view of a settled checkout session.
type CompletedSession struct {
	BookingID        string
	UserID           string
	CustomerEmail    string
	AmountTotalCents int64
	TransactionID    string
}

// ConfirmationEnqueuer queues the post-payment confirmation email. Enqueue
// failures are logged, never surfaced to the payment provider.
type ConfirmationEnqueuer interface {
	EnqueueBookingConfirmation(bookingID, email string) error
}
