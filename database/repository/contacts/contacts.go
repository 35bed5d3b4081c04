package contacts

import (
	"errors"

	"partyplan/models"
)

// ErrNotFound is returned when no submission matches the given ID.
var ErrNotFound = errors.New("contact submission not found")

// ContactRepository defines the interface for contact submission data access.
type ContactRepository interface {
	Create(c *models.ContactSubmission) error
	ListAll() ([]models.ContactSubmission, error)
	UpdateStatus(id, status string) error
}
