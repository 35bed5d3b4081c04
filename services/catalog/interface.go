package catalog

import "partyplan/models"

// CatalogService exposes the package catalog to handlers.
type CatalogService interface {
	ListActive() ([]models.ServicePackage, error)
	ListAll() ([]models.ServicePackage, error)
	GetByID(id string) (*models.ServicePackage, error)
	Create(input models.ServicePackageInput) (*models.ServicePackage, error)
	Update(id string, input models.ServicePackageInput) (*models.ServicePackage, error)
	// Remove deletes a package outright when nothing references it and
	// soft-deactivates it otherwise. It reports whether a hard delete happened.
	Remove(id string) (bool, error)
}
