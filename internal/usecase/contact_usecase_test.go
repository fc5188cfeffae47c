package usecase

import (
	"context"
	"errors"
	"testing"

	"wynngrid/internal/domain/contact"
)

func validContactInput() ContactInput {
	return ContactInput{
		FirstName:   "Ada",
		LastName:    "L",
		Email:       "a@b.com",
		PhoneNumber: "5551234",
		Purpose:     contact.PurposeQuery,
		Message:     "Looking for a renovation quote.",
	}
}

func TestContactSubmit_Validation(t *testing.T) {
	uc := NewContactUsecase(&mockContactRepo{}, &mockMailer{}, "admin@b.com", discardLogger())

	in := validContactInput()
	in.Message = ""
	if _, err := uc.Submit(context.Background(), in); !errors.Is(err, ErrMissingContactFields) {
		t.Fatalf("expected ErrMissingContactFields, got %v", err)
	}

	in = validContactInput()
	in.Purpose = "Complaint"
	if _, err := uc.Submit(context.Background(), in); !errors.Is(err, ErrInvalidPurpose) {
		t.Fatalf("expected ErrInvalidPurpose, got %v", err)
	}
}

func TestContactSubmit_PersistsAndNotifies(t *testing.T) {
	repo := &mockContactRepo{}
	mailer := &mockMailer{}
	uc := NewContactUsecase(repo, mailer, "admin@b.com", discardLogger())

	c, err := uc.Submit(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.contacts) != 1 {
		t.Fatalf("expected one persisted contact")
	}
	if c.Purpose != contact.PurposeQuery {
		t.Fatalf("unexpected purpose %q", c.Purpose)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("expected admin + confirmation mail, got %d", len(mailer.sent))
	}
	if mailer.sent[0].To != "admin@b.com" || mailer.sent[1].To != "a@b.com" {
		t.Fatalf("unexpected recipients %+v", mailer.sent)
	}
}

func TestContactSubmit_NoAdminConfigured(t *testing.T) {
	mailer := &mockMailer{}
	uc := NewContactUsecase(&mockContactRepo{}, mailer, "", discardLogger())

	if _, err := uc.Submit(context.Background(), validContactInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].To != "a@b.com" {
		t.Fatalf("only the confirmation mail should go out, got %+v", mailer.sent)
	}
}

func TestNotifySubscribe(t *testing.T) {
	repo := &mockContactRepo{}
	mailer := &mockMailer{}
	uc := NewNotifyUsecase(repo, mailer, discardLogger())

	if _, err := uc.Subscribe(context.Background(), "not-an-email"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	sub, err := uc.Subscribe(context.Background(), " a@b.com ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sub.Email != "a@b.com" {
		t.Fatalf("expected trimmed email, got %q", sub.Email)
	}
	if sub.Status != contact.SubscriberStatusPending {
		t.Fatalf("expected pending status, got %q", sub.Status)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected confirmation mail")
	}

	if _, err := uc.Subscribe(context.Background(), "a@b.com"); !errors.Is(err, contact.ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}
