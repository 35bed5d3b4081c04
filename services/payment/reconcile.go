package payment

import (
	"time"

	bookingsRepo "partyplan/database/repository/bookings"
	paymentsRepo "partyplan/database/repository/payments"
	"partyplan/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reconciler applies completed checkout sessions to booking and payment
// state. The writes run with the service's own database credentials since
// the caller is the payment provider, not an end user.
type Reconciler struct {
	Bookings bookingsRepo.BookingRepository
	Payments paymentsRepo.PaymentRepository
	Enqueuer ConfirmationEnqueuer // optional
	Logger   *zap.Logger
}

// HandleCompletedSession confirms the booking and records the payment. The
// UNIQUE(booking_id) constraint makes redelivery of the same session a
// no-op: the booking update is idempotent and the duplicate insert is
// skipped. Any returned error signals the provider to redeliver.
func (r *Reconciler) HandleCompletedSession(sess CompletedSession) error {
	if err := r.Bookings.UpdateStatus(sess.BookingID, models.BookingStatusConfirmed); err != nil {
		return err
	}

	inserted, err := r.Payments.Insert(&models.Payment{
		ID:            uuid.New().String(),
		BookingID:     sess.BookingID,
		Amount:        float64(sess.AmountTotalCents) / 100,
		Status:        "completed",
		TransactionID: sess.TransactionID,
		PaymentMethod: "stripe",
		PaidAt:        time.Now(),
	})
	if err != nil {
		return err
	}
	if !inserted {
		r.Logger.Info("duplicate payment event ignored", zap.String("booking_id", sess.BookingID))
		return nil
	}

	r.Logger.Info("booking confirmed",
		zap.String("booking_id", sess.BookingID),
		zap.String("transaction_id", sess.TransactionID))

	if r.Enqueuer != nil && sess.CustomerEmail != "" {
		if err := r.Enqueuer.EnqueueBookingConfirmation(sess.BookingID, sess.CustomerEmail); err != nil {
			r.Logger.Warn("failed to enqueue confirmation email", zap.Error(err))
		}
	}
	return nil
}
