package payments

import (
	"database/sql"
	"fmt"

	"partyplan/models"
)

// PostgresPaymentRepo implements PaymentRepository on Postgres.
type PostgresPaymentRepo struct {
	db *sql.DB
}

func NewPostgresPaymentRepo(db *sql.DB) *PostgresPaymentRepo {
	return &PostgresPaymentRepo{db: db}
}

// Insert writes the payment, relying on the UNIQUE(booking_id) constraint
// to swallow duplicate webhook deliveries.
func (r *PostgresPaymentRepo) Insert(p *models.Payment) (bool, error) {
	res, err := r.db.Exec(`INSERT INTO payments
		(id, booking_id, amount, status, transaction_id, payment_method, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (booking_id) DO NOTHING`,
		p.ID, p.BookingID, p.Amount, p.Status, p.TransactionID, p.PaymentMethod, p.PaidAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return n > 0, nil
}

// GetByBookingID retrieves the payment for a booking.
func (r *PostgresPaymentRepo) GetByBookingID(bookingID string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.QueryRow(`SELECT id, booking_id, amount, status, transaction_id, payment_method, paid_at, created_at
		FROM payments WHERE booking_id = $1`, bookingID).
		Scan(&p.ID, &p.BookingID, &p.Amount, &p.Status, &p.TransactionID, &p.PaymentMethod, &p.PaidAt, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment for booking %s: %w", bookingID, err)
	}
	return &p, nil
}
