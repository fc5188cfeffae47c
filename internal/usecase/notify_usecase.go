package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"wynngrid/internal/domain/contact"
	mailpkg "wynngrid/internal/pkg/mail"
)

var ErrInvalidEmail = errors.New("a valid email address is required")

type NotifyUsecase interface {
	Subscribe(ctx context.Context, email string) (contact.Subscriber, error)
}

type Notify struct {
	subscribers contact.Repository
	mailer      mailpkg.Mailer
	logger      *log.Logger
}

func NewNotifyUsecase(subscribers contact.Repository, mailer mailpkg.Mailer, logger *log.Logger) *Notify {
	return &Notify{subscribers: subscribers, mailer: mailer, logger: logger}
}

func (s *Notify) Subscribe(ctx context.Context, email string) (contact.Subscriber, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return contact.Subscriber{}, ErrInvalidEmail
	}

	exists, err := s.subscribers.SubscriberExists(ctx, email)
	if err != nil {
		return contact.Subscriber{}, err
	}
	if exists {
		return contact.Subscriber{}, contact.ErrAlreadySubscribed
	}

	sub := contact.Subscriber{
		ID:     uuid.New(),
		Email:  email,
		Status: contact.SubscriberStatusPending,
	}
	if err := s.subscribers.CreateSubscriber(ctx, sub); err != nil {
		return contact.Subscriber{}, err
	}

	mailpkg.SendBestEffort(ctx, s.mailer, s.logger, email,
		"You're on the list",
		"Thanks for subscribing. We'll notify you as soon as we launch.")

	return sub, nil
}
