package payments

import (
	"testing"
	"time"

	"partyplan/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayment() *models.Payment {
	return &models.Payment{
		ID:            "pay-1",
		BookingID:     "b-1",
		Amount:        897,
		Status:        "completed",
		TransactionID: "pi_123",
		PaymentMethod: "stripe",
		PaidAt:        time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestInsertReportsTrueOnFirstWrite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO payments").
		WithArgs("pay-1", "b-1", 897.0, "completed", "pi_123", "stripe",
			time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresPaymentRepo(db)
	inserted, err := repo.Insert(testPayment())
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertReportsFalseWhenBookingAlreadyPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// ON CONFLICT (booking_id) DO NOTHING affects zero rows on redelivery.
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresPaymentRepo(db)
	inserted, err := repo.Insert(testPayment())
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestGetByBookingIDReturnsErrNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM payments").
		WithArgs("b-404").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "amount", "status", "transaction_id", "payment_method", "paid_at", "created_at",
		}))

	repo := NewPostgresPaymentRepo(db)
	_, err = repo.GetByBookingID("b-404")
	assert.ErrorIs(t, err, ErrNotFound)
}
