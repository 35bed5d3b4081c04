package contacts

import (
	"database/sql"
	"fmt"

	"partyplan/models"
)

// PostgresContactRepo implements ContactRepository on Postgres.
type PostgresContactRepo struct {
	db *sql.DB
}

func NewPostgresContactRepo(db *sql.DB) *PostgresContactRepo {
	return &PostgresContactRepo{db: db}
}

// Create inserts a new contact submission.
func (r *PostgresContactRepo) Create(c *models.ContactSubmission) error {
	_, err := r.db.Exec(`INSERT INTO contact_submissions (id, name, email, phone, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status)
	if err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}
	return nil
}

// ListAll returns every submission, newest first.
func (r *PostgresContactRepo) ListAll() ([]models.ContactSubmission, error) {
	rows, err := r.db.Query(`SELECT id, name, email, phone, subject, message, status, created_at
		FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	var out []models.ContactSubmission
	for rows.Next() {
		var c models.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateStatus advances a submission's status.
func (r *PostgresContactRepo) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE contact_submissions SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update contact status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
