package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"wynngrid/internal/domain/contact"
	"wynngrid/internal/pkg/mail"
)

var (
	ErrMissingContactFields = errors.New("firstName, lastName, email, phoneNumber, purpose, and message are required")
	ErrInvalidPurpose       = errors.New("purpose must be one of Query, Feedback, Support, or Business")
)

type ContactInput struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	Purpose         string
	Message         string
	RequireCallback bool
}

type ContactUsecase interface {
	Submit(ctx context.Context, in ContactInput) (contact.Contact, error)
}

type Contacts struct {
	contacts   contact.Repository
	mailer     mail.Mailer
	adminEmail string
	logger     *log.Logger
}

func NewContactUsecase(contacts contact.Repository, mailer mail.Mailer, adminEmail string, logger *log.Logger) *Contacts {
	return &Contacts{contacts: contacts, mailer: mailer, adminEmail: adminEmail, logger: logger}
}

func (s *Contacts) Submit(ctx context.Context, in ContactInput) (contact.Contact, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.FirstName == "" || in.LastName == "" || in.Email == "" ||
		in.PhoneNumber == "" || in.Purpose == "" || in.Message == "" {
		return contact.Contact{}, ErrMissingContactFields
	}
	if !contact.ValidPurpose(in.Purpose) {
		return contact.Contact{}, ErrInvalidPurpose
	}

	c := contact.Contact{
		ID:              uuid.New(),
		Purpose:         in.Purpose,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		PhoneNumber:     in.PhoneNumber,
		Email:           in.Email,
		Message:         in.Message,
		RequireCallback: in.RequireCallback,
	}
	if err := s.contacts.CreateContact(ctx, c); err != nil {
		return contact.Contact{}, err
	}

	if s.adminEmail == "" {
		s.logger.Printf("[Contact] admin email not configured, skipping notification for %s", c.ID)
	} else {
		callback := "no"
		if c.RequireCallback {
			callback = "yes"
		}
		mail.SendBestEffort(ctx, s.mailer, s.logger, s.adminEmail,
			"New Contact Form Submission",
			fmt.Sprintf("New %s submission from %s %s <%s> (%s, callback: %s):\n\n%s",
				c.Purpose, c.FirstName, c.LastName, c.Email, c.PhoneNumber, callback, c.Message))
	}

	mail.SendBestEffort(ctx, s.mailer, s.logger, c.Email,
		"We received your message",
		fmt.Sprintf("Hi %s,\n\nThanks for reaching out. Our team will get back to you shortly.", c.FirstName))

	return c, nil
}
