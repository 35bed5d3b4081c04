package roles

import (
	"database/sql"
	"fmt"
)

// PostgresRoleRepo implements RoleRepository on Postgres.
type PostgresRoleRepo struct {
	db *sql.DB
}

func NewPostgresRoleRepo(db *sql.DB) *PostgresRoleRepo {
	return &PostgresRoleRepo{db: db}
}

// HasRole reports whether the user carries the given role.
func (r *PostgresRoleRepo) HasRole(userID, role string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`,
		userID, role).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return exists, nil
}
