package analytics

import (
	"database/sql"
	"fmt"

	"partyplan/models"
)

// Service computes the admin dashboard aggregates straight from SQL.
type Service struct {
	DB *sql.DB
}

// Fetch returns booking totals, revenue, a six-month trend, and the most
// booked packages.
func (s *Service) Fetch() (*models.Analytics, error) {
	var a models.Analytics

	err := s.DB.QueryRow(`SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'pending'),
		COUNT(*) FILTER (WHERE status = 'confirmed')
		FROM bookings`).
		Scan(&a.TotalBookings, &a.PendingBookings, &a.ConfirmedBookings)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	err = s.DB.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'completed'`).
		Scan(&a.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	trend, err := s.monthlyTrend()
	if err != nil {
		return nil, err
	}
	a.MonthlyTrend = trend

	popular, err := s.popularPackages()
	if err != nil {
		return nil, err
	}
	a.PopularPackages = popular

	return &a, nil
}

func (s *Service) monthlyTrend() ([]models.MonthlyStat, error) {
	rows, err := s.DB.Query(`SELECT
		to_char(b.created_at, 'YYYY-MM') AS month,
		COUNT(*),
		COALESCE(SUM(p.amount), 0)
		FROM bookings b
		LEFT JOIN payments p ON p.booking_id = b.id
		WHERE b.created_at >= now() - interval '6 months'
		GROUP BY month ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly trend: %w", err)
	}
	defer rows.Close()

	var out []models.MonthlyStat
	for rows.Next() {
		var m models.MonthlyStat
		if err := rows.Scan(&m.Month, &m.Bookings, &m.Revenue); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Service) popularPackages() ([]models.PackageCount, error) {
	rows, err := s.DB.Query(`SELECT p.id, p.title, COUNT(b.id) AS bookings
		FROM service_packages p
		JOIN bookings b ON b.package_id = p.id
		GROUP BY p.id, p.title
		ORDER BY bookings DESC
		LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular packages: %w", err)
	}
	defer rows.Close()

	var out []models.PackageCount
	for rows.Next() {
		var p models.PackageCount
		if err := rows.Scan(&p.PackageID, &p.Title, &p.Bookings); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
