package models

// Identity is the authenticated caller resolved by the auth middleware and
// passed explicitly through the request context.
type Identity struct {
	UserID string
	Email  string
}

// Analytics is the admin dashboard aggregate.
type Analytics struct {
	TotalBookings     int            `json:"total_bookings"`
	PendingBookings   int            `json:"pending_bookings"`
	ConfirmedBookings int            `json:"confirmed_bookings"`
	TotalRevenue      float64        `json:"total_revenue"`
	MonthlyTrend      []MonthlyStat  `json:"monthly_trend"`
	PopularPackages   []PackageCount `json:"popular_packages"`
}

// MonthlyStat is one month of booking volume and revenue.
type MonthlyStat struct {
	Month    string  `json:"month"` // "YYYY-MM"
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// PackageCount ranks a package by booking volume.
type PackageCount struct {
	PackageID string `json:"package_id"`
	Title     string `json:"title"`
	Bookings  int    `json:"bookings"`
}
