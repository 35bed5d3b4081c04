package roles

// RoleRepository defines the interface for role lookups.
type RoleRepository interface {
	HasRole(userID, role string) (bool, error)
}
