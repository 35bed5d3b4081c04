package export

import (
	"testing"

	"partyplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildBookingsWorkbook(t *testing.T) {
	rows := []models.AdminBookingRow{
		{
			Booking: models.Booking{
				ID:           "b-1",
				BookingDate:  "2026-09-01",
				EventDate:    "2026-10-01",
				GuestCount:   3,
				TotalAmount:  897,
				Status:       "confirmed",
				PackageTitle: "Deluxe Party",
			},
			CustomerName:  "Jane Doe",
			CustomerEmail: "jane@example.com",
			CustomerPhone: "555-0100",
		},
		{
			Booking: models.Booking{
				ID:          "b-2",
				EventDate:   "2026-11-01",
				GuestCount:  1,
				TotalAmount: 299,
				Status:      "pending",
			},
		},
	}

	buf, err := BuildBookingsWorkbook(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Bookings", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Booking ID", header)

	name, err := f.GetCellValue("Bookings", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)

	email, err := f.GetCellValue("Bookings", "C2")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)

	amount, err := f.GetCellValue("Bookings", "I2")
	require.NoError(t, err)
	assert.Equal(t, "897", amount)

	// Missing profile details fall back to a placeholder name.
	fallback, err := f.GetCellValue("Bookings", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Guest", fallback)
}

func TestBuildBookingsWorkbookEmpty(t *testing.T) {
	buf, err := BuildBookingsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
