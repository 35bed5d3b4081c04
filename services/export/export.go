package export

import (
	"bytes"
	"fmt"

	"partyplan/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Bookings"

// Header columns for the admin bookings export. Order is fixed and
// consumed downstream by back-office tooling.
var headers = []interface{}{
	"Booking ID", "Customer Name", "Email", "Phone", "Package",
	"Booking Date", "Event Date", "Guest Count", "Total Amount",
	"Status", "Special Requests",
}

// BuildBookingsWorkbook renders the admin booking rows into an xlsx
// workbook and returns its bytes.
func BuildBookingsWorkbook(rows []models.AdminBookingRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "K1", boldStyle)
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.ID,
			customerName(row),
			row.CustomerEmail,
			row.CustomerPhone,
			row.PackageTitle,
			row.BookingDate,
			row.EventDate,
			row.GuestCount,
			row.TotalAmount,
			row.Status,
			row.SpecialRequests,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write booking row: %w", err)
		}
	}

	// Widen the ID and name columns so exports open readably.
	_ = f.SetColWidth(sheetName, "A", "A", 38)
	_ = f.SetColWidth(sheetName, "B", "E", 24)
	_ = f.SetColWidth(sheetName, "K", "K", 40)

	return f.WriteToBuffer()
}

func customerName(row models.AdminBookingRow) string {
	if row.CustomerName == "" {
		return "Guest"
	}
	return row.CustomerName
}
