package payment

import (
	"errors"
	"fmt"
	"math"

	"partyplan/config"
	bookingsRepo "partyplan/database/repository/bookings"
	"partyplan/models"

	"go.uber.org/zap"
)

// DefaultCheckoutService is the checkout session broker. It loads the
// caller's booking, resolves the provider customer, and creates one hosted
// session per call; provider errors are surfaced verbatim with no retry.
type DefaultCheckoutService struct {
	Bookings bookingsRepo.BookingRepository
	Gateway  Gateway
	Logger   *zap.Logger
}

// CreateSession creates a hosted payment session for a booking owned by
// the caller. The booking and user identifiers ride along as session
// metadata; they are the sole correlation used by webhook reconciliation.
func (s *DefaultCheckoutService) CreateSession(identity models.Identity, bookingID, successURL, cancelURL string) (*CheckoutResult, error) {
	b, err := s.Bookings.GetByIDForUser(bookingID, identity.UserID)
	if err != nil {
		if errors.Is(err, bookingsRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	customerID, err := s.Gateway.FindCustomerIDByEmail(identity.Email)
	if err != nil {
		return nil, err
	}

	if successURL == "" {
		successURL = config.AppConfig.CheckoutSuccessURL
	}
	if cancelURL == "" {
		cancelURL = config.AppConfig.CheckoutCancelURL
	}

	result, err := s.Gateway.CreateCheckoutSession(SessionParams{
		CustomerID:         customerID,
		CustomerEmail:      identity.Email,
		ProductName:        b.PackageTitle,
		ProductDescription: fmt.Sprintf("%d guests, %s", b.GuestCount, b.EventDate),
		AmountCents:        int64(math.Round(b.TotalAmount * 100)),
		SuccessURL:         fmt.Sprintf("%s?booking_id=%s", successURL, b.ID),
		CancelURL:          fmt.Sprintf("%s?booking_id=%s", cancelURL, b.ID),
		Metadata: map[string]string{
			"booking_id": b.ID,
			"user_id":    identity.UserID,
		},
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("checkout session created",
		zap.String("session_id", result.ID),
		zap.String("booking_id", b.ID))
	return &CheckoutResult{URL: result.URL, SessionID: result.ID, BookingID: b.ID}, nil
}
