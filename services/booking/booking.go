package booking

import (
	"errors"
	"time"

	bookingsRepo "partyplan/database/repository/bookings"
	packagesRepo "partyplan/database/repository/packages"
	profilesRepo "partyplan/database/repository/profiles"
	"partyplan/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the default booking record manager.
type DefaultBookingService struct {
	Packages packagesRepo.PackageRepository
	Bookings bookingsRepo.BookingRepository
	Profiles profilesRepo.ProfileRepository // optional
	Logger   *zap.Logger
}

// Create verifies the package, freezes the total amount, and persists a
// pending booking. Guest count is floored at 1; there is no cross-booking
// capacity check and no expiry of abandoned pending bookings.
func (s *DefaultBookingService) Create(identity models.Identity, input models.BookingInput) (*models.Booking, error) {
	pkg, err := s.Packages.GetByID(input.PackageID)
	if err != nil {
		if errors.Is(err, packagesRepo.ErrNotFound) {
			return nil, ErrPackageUnavailable
		}
		return nil, err
	}
	if !pkg.IsActive {
		return nil, ErrPackageUnavailable
	}

	guests := input.GuestCount
	if guests < 1 {
		guests = 1
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          identity.UserID,
		PackageID:       pkg.ID,
		EventDate:       input.EventDate,
		BookingDate:     time.Now().Format("2006-01-02"),
		GuestCount:      guests,
		SpecialRequests: input.SpecialRequests,
		TotalAmount:     pkg.Price * float64(guests),
		Status:          models.BookingStatusPending,
		PackageTitle:    pkg.Title,
	}
	if err := s.Bookings.Create(b); err != nil {
		return nil, err
	}

	// Mirror the token email onto the profile so admin views and the
	// export can reach the customer. Best effort only.
	if s.Profiles != nil && identity.Email != "" {
		if err := s.Profiles.UpsertEmail(identity.UserID, identity.Email); err != nil {
			s.Logger.Warn("failed to record customer email", zap.Error(err))
		}
	}

	s.Logger.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("package_id", b.PackageID),
		zap.Float64("total_amount", b.TotalAmount))
	return b, nil
}

// ListByUser returns the caller's bookings for the dashboard.
func (s *DefaultBookingService) ListByUser(userID string) ([]models.Booking, error) {
	return s.Bookings.ListByUser(userID)
}

// GetForUser returns a booking only when owned by the caller.
func (s *DefaultBookingService) GetForUser(id, userID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, bookingsRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// CancelOwn lets the owner abandon a booking that is still pending.
func (s *DefaultBookingService) CancelOwn(id, userID string) (*models.Booking, error) {
	b, err := s.GetForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusPending {
		return nil, ErrNotCancellable
	}
	if err := s.Bookings.UpdateStatus(b.ID, models.BookingStatusCancelled); err != nil {
		return nil, err
	}
	b.Status = models.BookingStatusCancelled
	return b, nil
}

// ListAll returns every booking with customer details for the admin panel.
func (s *DefaultBookingService) ListAll() ([]models.AdminBookingRow, error) {
	return s.Bookings.ListAllAdmin()
}

// SetStatus applies an admin transition (confirmed, cancelled, completed).
func (s *DefaultBookingService) SetStatus(id, status string) error {
	switch status {
	case models.BookingStatusConfirmed, models.BookingStatusCancelled, models.BookingStatusCompleted:
	default:
		return ErrInvalidStatus
	}
	err := s.Bookings.UpdateStatus(id, status)
	if errors.Is(err, bookingsRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
