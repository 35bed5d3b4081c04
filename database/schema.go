package database

import (
	"database/sql"
	"fmt"
)

// Migrate applies the idempotent schema. The UNIQUE constraint on
// payments.booking_id is what makes webhook reconciliation safe to
// redeliver.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS service_packages (
			id           UUID PRIMARY KEY,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			price        NUMERIC(10,2) NOT NULL,
			duration     TEXT NOT NULL DEFAULT '',
			capacity     INT NOT NULL,
			rating       NUMERIC(3,2) NOT NULL DEFAULT 0,
			review_count INT NOT NULL DEFAULT 0,
			image_url    TEXT NOT NULL DEFAULT '',
			is_active    BOOLEAN NOT NULL DEFAULT TRUE,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS package_features (
			id         UUID PRIMARY KEY,
			package_id UUID NOT NULL REFERENCES service_packages(id) ON DELETE CASCADE,
			feature    TEXT NOT NULL,
			position   INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id    TEXT PRIMARY KEY,
			email      TEXT NOT NULL DEFAULT '',
			first_name TEXT NOT NULL DEFAULT '',
			last_name  TEXT NOT NULL DEFAULT '',
			phone      TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id TEXT NOT NULL,
			role    TEXT NOT NULL,
			PRIMARY KEY (user_id, role)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id               UUID PRIMARY KEY,
			user_id          TEXT NOT NULL,
			package_id       UUID NOT NULL REFERENCES service_packages(id),
			event_date       DATE NOT NULL,
			booking_date     DATE NOT NULL,
			guest_count      INT NOT NULL CHECK (guest_count >= 1),
			special_requests TEXT NOT NULL DEFAULT '',
			total_amount     NUMERIC(10,2) NOT NULL,
			status           TEXT NOT NULL DEFAULT 'pending',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id             UUID PRIMARY KEY,
			booking_id     UUID NOT NULL UNIQUE REFERENCES bookings(id),
			amount         NUMERIC(10,2) NOT NULL,
			status         TEXT NOT NULL DEFAULT 'completed',
			transaction_id TEXT NOT NULL,
			payment_method TEXT NOT NULL DEFAULT 'stripe',
			paid_at        TIMESTAMPTZ NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS contact_submissions (
			id         UUID PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			phone      TEXT NOT NULL DEFAULT '',
			subject    TEXT NOT NULL,
			message    TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'new',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
