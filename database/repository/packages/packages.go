package packages

import (
	"errors"

	"partyplan/models"
)

// ErrNotFound is returned when no package matches the given ID.
var ErrNotFound = errors.New("package not found")

// PackageRepository defines the interface for service package data access.
type PackageRepository interface {
	GetByID(id string) (*models.ServicePackage, error)
	ListActive() ([]models.ServicePackage, error)
	ListAll() ([]models.ServicePackage, error)
	Create(pkg *models.ServicePackage) error
	Update(pkg *models.ServicePackage) error
	SetActive(id string, active bool) error
	HasBookings(id string) (bool, error)
	Delete(id string) error
}
