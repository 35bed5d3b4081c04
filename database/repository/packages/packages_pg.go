package packages

import (
	"database/sql"
	"fmt"

	"partyplan/models"

	"github.com/google/uuid"
)

// PostgresPackageRepo implements PackageRepository on Postgres.
type PostgresPackageRepo struct {
	db *sql.DB
}

func NewPostgresPackageRepo(db *sql.DB) *PostgresPackageRepo {
	return &PostgresPackageRepo{db: db}
}

const packageColumns = `id, title, description, price, duration, capacity,
	rating, review_count, image_url, is_active, created_at, updated_at`

func (r *PostgresPackageRepo) scanPackage(row *sql.Row) (*models.ServicePackage, error) {
	var pkg models.ServicePackage
	err := row.Scan(&pkg.ID, &pkg.Title, &pkg.Description, &pkg.Price,
		&pkg.Duration, &pkg.Capacity, &pkg.Rating, &pkg.ReviewCount,
		&pkg.ImageURL, &pkg.IsActive, &pkg.CreatedAt, &pkg.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan package: %w", err)
	}
	return &pkg, nil
}

// GetByID retrieves a package with its features.
func (r *PostgresPackageRepo) GetByID(id string) (*models.ServicePackage, error) {
	row := r.db.QueryRow(`SELECT `+packageColumns+` FROM service_packages WHERE id = $1`, id)
	pkg, err := r.scanPackage(row)
	if err != nil {
		return nil, err
	}
	features, err := r.featuresFor(pkg.ID)
	if err != nil {
		return nil, err
	}
	pkg.Features = features
	return pkg, nil
}

// ListActive returns all active packages ordered by price.
func (r *PostgresPackageRepo) ListActive() ([]models.ServicePackage, error) {
	return r.list(`SELECT ` + packageColumns + ` FROM service_packages WHERE is_active = TRUE ORDER BY price`)
}

// ListAll returns every package, newest first, for the admin panel.
func (r *PostgresPackageRepo) ListAll() ([]models.ServicePackage, error) {
	return r.list(`SELECT ` + packageColumns + ` FROM service_packages ORDER BY created_at DESC`)
}

func (r *PostgresPackageRepo) list(query string) ([]models.ServicePackage, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	var pkgs []models.ServicePackage
	for rows.Next() {
		var pkg models.ServicePackage
		if err := rows.Scan(&pkg.ID, &pkg.Title, &pkg.Description, &pkg.Price,
			&pkg.Duration, &pkg.Capacity, &pkg.Rating, &pkg.ReviewCount,
			&pkg.ImageURL, &pkg.IsActive, &pkg.CreatedAt, &pkg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan package row: %w", err)
		}
		pkgs = append(pkgs, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range pkgs {
		features, err := r.featuresFor(pkgs[i].ID)
		if err != nil {
			return nil, err
		}
		pkgs[i].Features = features
	}
	return pkgs, nil
}

func (r *PostgresPackageRepo) featuresFor(packageID string) ([]string, error) {
	rows, err := r.db.Query(`SELECT feature FROM package_features WHERE package_id = $1 ORDER BY position`, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list package features: %w", err)
	}
	defer rows.Close()

	var features []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

// Create inserts a new package and its features.
func (r *PostgresPackageRepo) Create(pkg *models.ServicePackage) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO service_packages
		(id, title, description, price, duration, capacity, rating, review_count, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		pkg.ID, pkg.Title, pkg.Description, pkg.Price, pkg.Duration,
		pkg.Capacity, pkg.Rating, pkg.ReviewCount, pkg.ImageURL, pkg.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	if err := insertFeatures(tx, pkg.ID, pkg.Features); err != nil {
		return err
	}
	return tx.Commit()
}

// Update saves package fields and replaces its feature list.
func (r *PostgresPackageRepo) Update(pkg *models.ServicePackage) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE service_packages SET
		title = $2, description = $3, price = $4, duration = $5, capacity = $6,
		image_url = $7, is_active = $8, updated_at = now()
		WHERE id = $1`,
		pkg.ID, pkg.Title, pkg.Description, pkg.Price, pkg.Duration,
		pkg.Capacity, pkg.ImageURL, pkg.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(`DELETE FROM package_features WHERE package_id = $1`, pkg.ID); err != nil {
		return fmt.Errorf("failed to clear package features: %w", err)
	}
	if err := insertFeatures(tx, pkg.ID, pkg.Features); err != nil {
		return err
	}
	return tx.Commit()
}

func insertFeatures(tx *sql.Tx, packageID string, features []string) error {
	for i, f := range features {
		if _, err := tx.Exec(`INSERT INTO package_features (id, package_id, feature, position) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), packageID, f, i); err != nil {
			return fmt.Errorf("failed to insert package feature: %w", err)
		}
	}
	return nil
}

// SetActive toggles the soft-deactivation flag.
func (r *PostgresPackageRepo) SetActive(id string, active bool) error {
	res, err := r.db.Exec(`UPDATE service_packages SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to set package active flag: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// HasBookings reports whether any booking references the package.
func (r *PostgresPackageRepo) HasBookings(id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM bookings WHERE package_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check package bookings: %w", err)
	}
	return exists, nil
}

// Delete removes a package outright. Callers must check HasBookings first;
// packages with bookings are deactivated instead.
func (r *PostgresPackageRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM service_packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
