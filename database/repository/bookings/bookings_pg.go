package bookings

import (
	"database/sql"
	"fmt"
	"time"

	"partyplan/models"
)

// PostgresBookingRepo implements BookingRepository on Postgres.
type PostgresBookingRepo struct {
	db *sql.DB
}

func NewPostgresBookingRepo(db *sql.DB) *PostgresBookingRepo {
	return &PostgresBookingRepo{db: db}
}

const dateLayout = "2006-01-02"

// Create persists a new booking row.
func (r *PostgresBookingRepo) Create(b *models.Booking) error {
	_, err := r.db.Exec(`INSERT INTO bookings
		(id, user_id, package_id, event_date, booking_date, guest_count, special_requests, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.UserID, b.PackageID, b.EventDate, b.BookingDate,
		b.GuestCount, b.SpecialRequests, b.TotalAmount, b.Status)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

const bookingSelect = `SELECT b.id, b.user_id, b.package_id, b.event_date, b.booking_date,
	b.guest_count, b.special_requests, b.total_amount, b.status, p.title,
	b.created_at, b.updated_at
	FROM bookings b JOIN service_packages p ON p.id = b.package_id`

func scanBooking(s interface {
	Scan(dest ...interface{}) error
}) (*models.Booking, error) {
	var b models.Booking
	var eventDate, bookingDate time.Time
	err := s.Scan(&b.ID, &b.UserID, &b.PackageID, &eventDate, &bookingDate,
		&b.GuestCount, &b.SpecialRequests, &b.TotalAmount, &b.Status,
		&b.PackageTitle, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.EventDate = eventDate.Format(dateLayout)
	b.BookingDate = bookingDate.Format(dateLayout)
	return &b, nil
}

// GetByID retrieves a booking joined with its package title.
func (r *PostgresBookingRepo) GetByID(id string) (*models.Booking, error) {
	row := r.db.QueryRow(bookingSelect+` WHERE b.id = $1`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve booking %s: %w", id, err)
	}
	return b, nil
}

// GetByIDForUser retrieves a booking only when owned by the given user.
func (r *PostgresBookingRepo) GetByIDForUser(id, userID string) (*models.Booking, error) {
	row := r.db.QueryRow(bookingSelect+` WHERE b.id = $1 AND b.user_id = $2`, id, userID)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve booking %s: %w", id, err)
	}
	return b, nil
}

// ListByUser returns the user's bookings, newest first.
func (r *PostgresBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	rows, err := r.db.Query(bookingSelect+` WHERE b.user_id = $1 ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// ListAllAdmin returns every booking joined with customer profile details.
func (r *PostgresBookingRepo) ListAllAdmin() ([]models.AdminBookingRow, error) {
	rows, err := r.db.Query(`SELECT b.id, b.user_id, b.package_id, b.event_date, b.booking_date,
		b.guest_count, b.special_requests, b.total_amount, b.status, p.title,
		b.created_at, b.updated_at,
		COALESCE(pr.first_name, ''), COALESCE(pr.last_name, ''),
		COALESCE(pr.email, ''), COALESCE(pr.phone, '')
		FROM bookings b
		JOIN service_packages p ON p.id = b.package_id
		LEFT JOIN profiles pr ON pr.user_id = b.user_id
		ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var out []models.AdminBookingRow
	for rows.Next() {
		var row models.AdminBookingRow
		var eventDate, bookingDate time.Time
		var first, last string
		if err := rows.Scan(&row.ID, &row.UserID, &row.PackageID, &eventDate, &bookingDate,
			&row.GuestCount, &row.SpecialRequests, &row.TotalAmount, &row.Status,
			&row.PackageTitle, &row.CreatedAt, &row.UpdatedAt,
			&first, &last, &row.CustomerEmail, &row.CustomerPhone); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		row.EventDate = eventDate.Format(dateLayout)
		row.BookingDate = bookingDate.Format(dateLayout)
		row.CustomerName = joinName(first, last)
		out = append(out, row)
	}
	return out, rows.Err()
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// UpdateStatus moves a booking to the given status.
func (r *PostgresBookingRepo) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
