package models

import "time"

// Booking statuses. A booking starts pending and is moved to confirmed by
// payment reconciliation, or to cancelled/completed by an admin (or the
// owner, for pending bookings).
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a user's reservation of a package for a date.
type Booking struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	PackageID       string    `json:"package_id"`
	EventDate       string    `json:"event_date"`   // "YYYY-MM-DD"
	BookingDate     string    `json:"booking_date"` // creation date, "YYYY-MM-DD"
	GuestCount      int       `json:"guest_count"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	TotalAmount     float64   `json:"total_amount"` // frozen at creation time
	Status          string    `json:"status"`
	PackageTitle    string    `json:"package_title,omitempty"` // joined for read paths
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookingInput carries the booking-creation request fields.
type BookingInput struct {
	PackageID       string `json:"package_id" binding:"required"`
	EventDate       string `json:"event_date" binding:"required"`
	GuestCount      int    `json:"guest_count"`
	SpecialRequests string `json:"special_requests"`
}

// AdminBookingRow is a booking joined with customer and package details,
// used by the admin listing and the spreadsheet export.
type AdminBookingRow struct {
	Booking
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}
