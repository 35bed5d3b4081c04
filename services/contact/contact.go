package contact

import (
	"fmt"

	"partyplan/config"
	contactsRepo "partyplan/database/repository/contacts"
	"partyplan/models"
	"partyplan/services/mail"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactService handles contact form submissions and the admin inbox.
type ContactService interface {
	Submit(input models.ContactInput) (*models.ContactSubmission, error)
	ListAll() ([]models.ContactSubmission, error)
	UpdateStatus(id, status string) error
}

// DefaultContactService stores submissions and notifies the site inbox.
type DefaultContactService struct {
	Repo   contactsRepo.ContactRepository
	Mailer mail.Mailer
	Logger *zap.Logger
}

// Submit persists the submission, then emails the site inbox. A mail
// failure is logged but never fails the submission.
func (s *DefaultContactService) Submit(input models.ContactInput) (*models.ContactSubmission, error) {
	sub := &models.ContactSubmission{
		ID:      uuid.New().String(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.ContactStatusNew,
	}
	if err := s.Repo.Create(sub); err != nil {
		return nil, err
	}

	inbox := config.AppConfig.ContactInbox
	if inbox == "" {
		inbox = config.AppConfig.SMTPUser
	}
	if s.Mailer != nil && inbox != "" {
		body := fmt.Sprintf("New contact form submission\n\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\n%s",
			sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message)
		if err := s.Mailer.Send(inbox, "New Contact: "+sub.Subject, body); err != nil {
			s.Logger.Warn("failed to send contact notification", zap.Error(err))
		}
	}
	return sub, nil
}

// ListAll returns every submission for the admin inbox.
func (s *DefaultContactService) ListAll() ([]models.ContactSubmission, error) {
	return s.Repo.ListAll()
}

// UpdateStatus advances a submission through its lifecycle.
func (s *DefaultContactService) UpdateStatus(id, status string) error {
	switch status {
	case models.ContactStatusNew, models.ContactStatusInProgress,
		models.ContactStatusResolved, models.ContactStatusClosed:
	default:
		return fmt.Errorf("invalid contact status %q", status)
	}
	return s.Repo.UpdateStatus(id, status)
}
