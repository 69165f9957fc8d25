package services

import (
	"context"
	"strings"

	"atlasweb_backend/internal/dto"
	"atlasweb_backend/internal/email"
	"atlasweb_backend/internal/logger"
	"atlasweb_backend/internal/models"
	"atlasweb_backend/internal/repositories"
	"atlasweb_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ContactService accepts public contact form submissions and notifies
// the site owner.
type ContactService interface {
	Submit(ctx context.Context, db *gorm.DB, req *dto.ContactSubmissionRequest) (*models.Contact, error)
}

type contactService struct {
	contactRepo repositories.ContactRepository
	emailSender email.Provider
	notifyEmail string
}

func NewContactService(contactRepo repositories.ContactRepository, emailSender email.Provider, notifyEmail string) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		emailSender: emailSender,
		notifyEmail: notifyEmail,
	}
}

// Submit stores the submission with status NEW and sends the owner
// notification. A notification failure is logged but does not fail the
// submission; the record is already durable at that point.
func (s *contactService) Submit(ctx context.Context, db *gorm.DB, req *dto.ContactSubmissionRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Company: strings.TrimSpace(req.Company),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Source:  strings.TrimSpace(req.Source),
		Status:  models.ContactStatusNew,
	}

	if err := s.contactRepo.Create(db, contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notify(ctx, contact)

	return contact, nil
}

func (s *contactService) notify(ctx context.Context, contact *models.Contact) {
	if s.emailSender == nil || s.notifyEmail == "" {
		return
	}

	data := email.TemplateData{
		"Name":    contact.Name,
		"Email":   contact.Email,
		"Phone":   contact.Phone,
		"Company": contact.Company,
		"Subject": contact.Subject,
		"Message": contact.Message,
		"Source":  contact.Source,
	}

	subject := "New contact form submission"
	if contact.Subject != "" {
		subject = "New contact: " + contact.Subject
	}

	msg := &email.Email{
		To:      []string{s.notifyEmail},
		Subject: subject,
	}
	if err := s.emailSender.SendWithTemplate("contact_notification", data, msg); err != nil {
		logger.CtxWarn(ctx, "contact notification failed", "contact_id", contact.ID, "error", err.Error())
	}
}
