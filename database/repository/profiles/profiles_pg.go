package profiles

import (
	"database/sql"
	"fmt"

	"partyplan/models"
)

// PostgresProfileRepo implements ProfileRepository on Postgres.
type PostgresProfileRepo struct {
	db *sql.DB
}

func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{db: db}
}

// Get retrieves a profile by user ID.
func (r *PostgresProfileRepo) Get(userID string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.QueryRow(`SELECT user_id, email, first_name, last_name, phone, created_at, updated_at
		FROM profiles WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.Email, &p.FirstName, &p.LastName, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profile %s: %w", userID, err)
	}
	return &p, nil
}

// Create inserts a new profile row.
func (r *PostgresProfileRepo) Create(p *models.Profile) error {
	_, err := r.db.Exec(`INSERT INTO profiles (user_id, email, first_name, last_name, phone) VALUES ($1, $2, $3, $4, $5)`,
		p.UserID, p.Email, p.FirstName, p.LastName, p.Phone)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// UpsertEmail writes the token email onto the profile, inserting a bare
// row for users who have never opened their profile page.
func (r *PostgresProfileRepo) UpsertEmail(userID, email string) error {
	_, err := r.db.Exec(`INSERT INTO profiles (user_id, email) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET email = EXCLUDED.email, updated_at = now()`,
		userID, email)
	if err != nil {
		return fmt.Errorf("failed to upsert profile email: %w", err)
	}
	return nil
}

// Update saves the owner-editable fields.
func (r *PostgresProfileRepo) Update(p *models.Profile) error {
	res, err := r.db.Exec(`UPDATE profiles SET first_name = $2, last_name = $3, phone = $4, updated_at = now()
		WHERE user_id = $1`, p.UserID, p.FirstName, p.LastName, p.Phone)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
