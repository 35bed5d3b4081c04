package bookings

import (
	"testing"
	"time"

	"partyplan/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingColumns = []string{
	"id", "user_id", "package_id", "event_date", "booking_date",
	"guest_count", "special_requests", "total_amount", "status", "title",
	"created_at", "updated_at",
}

func bookingRow(mockRows *sqlmock.Rows) *sqlmock.Rows {
	return mockRows.AddRow(
		"b-1", "user-1", "pkg-1",
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		3, "balloons", 897.0, "pending", "Deluxe Party",
		time.Now(), time.Now(),
	)
}

func TestCreateInsertsBookingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("b-1", "user-1", "pkg-1", "2026-10-01", "2026-09-01",
			3, "balloons", 897.0, "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresBookingRepo(db)
	err = repo.Create(&models.Booking{
		ID:              "b-1",
		UserID:          "user-1",
		PackageID:       "pkg-1",
		EventDate:       "2026-10-01",
		BookingDate:     "2026-09-01",
		GuestCount:      3,
		SpecialRequests: "balloons",
		TotalAmount:     897,
		Status:          models.BookingStatusPending,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUserFormatsDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN service_packages p").
		WithArgs("b-1", "user-1").
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingColumns)))

	repo := NewPostgresBookingRepo(db)
	b, err := repo.GetByIDForUser("b-1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, "2026-10-01", b.EventDate)
	assert.Equal(t, "2026-09-01", b.BookingDate)
	assert.Equal(t, "Deluxe Party", b.PackageTitle)
	assert.Equal(t, 897.0, b.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUserReturnsErrNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN service_packages p").
		WithArgs("b-1", "someone-else").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	repo := NewPostgresBookingRepo(db)
	_, err = repo.GetByIDForUser("b-1", "someone-else")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAllAdminJoinsCustomerProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := append(append([]string{}, bookingColumns...), "first_name", "last_name", "email", "phone")
	rows := sqlmock.NewRows(columns).
		AddRow("b-1", "user-1", "pkg-1",
			time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			3, "", 897.0, "confirmed", "Deluxe Party",
			time.Now(), time.Now(),
			"Jane", "Doe", "jane@example.com", "555-0100").
		AddRow("b-2", "user-2", "pkg-1",
			time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			1, "", 299.0, "pending", "Deluxe Party",
			time.Now(), time.Now(),
			"", "", "", "")

	mock.ExpectQuery("SELECT (.+) LEFT JOIN profiles pr").WillReturnRows(rows)

	repo := NewPostgresBookingRepo(db)
	out, err := repo.ListAllAdmin()
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Jane Doe", out[0].CustomerName)
	assert.Equal(t, "jane@example.com", out[0].CustomerEmail)
	assert.Equal(t, "555-0100", out[0].CustomerPhone)
	assert.Equal(t, "", out[1].CustomerName)
	assert.Equal(t, "", out[1].CustomerEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusReturnsErrNotFoundOnZeroRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("missing", "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresBookingRepo(db)
	err = repo.UpdateStatus("missing", "confirmed")
	assert.ErrorIs(t, err, ErrNotFound)
}
