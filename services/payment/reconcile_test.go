package payment

import (
	"errors"
	"testing"

	paymentsRepo "partyplan/database/repository/payments"
	"partyplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentRepo struct {
	paymentsRepo.PaymentRepository
	inserted  *models.Payment
	duplicate bool
	insertErr error
}

func (f *fakePaymentRepo) Insert(p *models.Payment) (bool, error) {
	f.inserted = p
	if f.insertErr != nil {
		return false, f.insertErr
	}
	return !f.duplicate, nil
}

type fakeEnqueuer struct {
	bookingID string
	email     string
	err       error
}

func (f *fakeEnqueuer) EnqueueBookingConfirmation(bookingID, email string) error {
	f.bookingID = bookingID
	f.email = email
	return f.err
}

func completedSession() CompletedSession {
	return CompletedSession{
		BookingID:        "b-1",
		UserID:           "user-1",
		CustomerEmail:    "jane@example.com",
		AmountTotalCents: 89700,
		TransactionID:    "pi_123",
	}
}

func TestHandleCompletedSessionConfirmsAndRecordsPayment(t *testing.T) {
	var gotID, gotStatus string
	payments := &fakePaymentRepo{}
	queue := &fakeEnqueuer{}
	rec := &Reconciler{
		Bookings: &fakeBookingRepo{updateStatus: func(id, status string) error {
			gotID, gotStatus = id, status
			return nil
		}},
		Payments: payments,
		Enqueuer: queue,
		Logger:   zap.NewNop(),
	}

	require.NoError(t, rec.HandleCompletedSession(completedSession()))

	assert.Equal(t, "b-1", gotID)
	assert.Equal(t, models.BookingStatusConfirmed, gotStatus)

	require.NotNil(t, payments.inserted)
	assert.Equal(t, "b-1", payments.inserted.BookingID)
	assert.Equal(t, 897.0, payments.inserted.Amount)
	assert.Equal(t, "pi_123", payments.inserted.TransactionID)
	assert.Equal(t, "completed", payments.inserted.Status)
	assert.Equal(t, "stripe", payments.inserted.PaymentMethod)

	assert.Equal(t, "b-1", queue.bookingID)
	assert.Equal(t, "jane@example.com", queue.email)
}

func TestHandleCompletedSessionIgnoresDuplicateDelivery(t *testing.T) {
	queue := &fakeEnqueuer{}
	rec := &Reconciler{
		Bookings: &fakeBookingRepo{updateStatus: func(id, status string) error { return nil }},
		Payments: &fakePaymentRepo{duplicate: true},
		Enqueuer: queue,
		Logger:   zap.NewNop(),
	}

	require.NoError(t, rec.HandleCompletedSession(completedSession()))
	// The duplicate is acknowledged without a second confirmation email.
	assert.Empty(t, queue.bookingID)
}

func TestHandleCompletedSessionPropagatesBookingError(t *testing.T) {
	dbErr := errors.New("connection reset")
	payments := &fakePaymentRepo{}
	rec := &Reconciler{
		Bookings: &fakeBookingRepo{updateStatus: func(id, status string) error { return dbErr }},
		Payments: payments,
		Logger:   zap.NewNop(),
	}

	err := rec.HandleCompletedSession(completedSession())
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, payments.inserted)
}

func TestHandleCompletedSessionSwallowsEnqueueFailure(t *testing.T) {
	rec := &Reconciler{
		Bookings: &fakeBookingRepo{updateStatus: func(id, status string) error { return nil }},
		Payments: &fakePaymentRepo{},
		Enqueuer: &fakeEnqueuer{err: errors.New("queue down")},
		Logger:   zap.NewNop(),
	}

	assert.NoError(t, rec.HandleCompletedSession(completedSession()))
}

func TestHandleCompletedSessionSkipsEnqueueWithoutEmail(t *testing.T) {
	queue := &fakeEnqueuer{}
	rec := &Reconciler{
		Bookings: &fakeBookingRepo{updateStatus: func(id, status string) error { return nil }},
		Payments: &fakePaymentRepo{},
		Enqueuer: queue,
		Logger:   zap.NewNop(),
	}

	sess := completedSession()
	sess.CustomerEmail = ""
	require.NoError(t, rec.HandleCompletedSession(sess))
	assert.Empty(t, queue.bookingID)
}
