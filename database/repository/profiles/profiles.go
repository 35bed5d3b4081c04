package profiles

import (
	"errors"

	"partyplan/models"
)

// ErrNotFound is returned when no profile exists for the user.
var ErrNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	Get(userID string) (*models.Profile, error)
	Create(p *models.Profile) error
	Update(p *models.Profile) error

	// UpsertEmail mirrors the auth token email onto the profile row,
	// creating the row when the user has never opened their profile.
	UpsertEmail(userID, email string) error
}
