package profile

import (
	"errors"

	profilesRepo "partyplan/database/repository/profiles"
	"partyplan/models"
)

// ProfileService reads and updates the caller's profile.
type ProfileService interface {
	GetOrCreate(identity models.Identity) (*models.Profile, error)
	Update(identity models.Identity, input models.ProfileInput) (*models.Profile, error)
}

// DefaultProfileService lazily creates a blank profile on first read, so
// every authenticated identity has a row to edit.
type DefaultProfileService struct {
	Repo profilesRepo.ProfileRepository
}

func (s *DefaultProfileService) GetOrCreate(identity models.Identity) (*models.Profile, error) {
	p, err := s.Repo.Get(identity.UserID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, profilesRepo.ErrNotFound) {
		return nil, err
	}

	p = &models.Profile{UserID: identity.UserID, Email: identity.Email}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultProfileService) Update(identity models.Identity, input models.ProfileInput) (*models.Profile, error) {
	if _, err := s.GetOrCreate(identity); err != nil {
		return nil, err
	}
	p := &models.Profile{
		UserID:    identity.UserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
	}
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return s.Repo.Get(identity.UserID)
}
