package dto

import (
	"time"

	"github.com/google/uuid"

	"wynngrid/internal/domain/contact"
)

type ContactResponse struct {
	ID              uuid.UUID `json:"id"`
	Purpose         string    `json:"purpose"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	PhoneNumber     string    `json:"phoneNumber"`
	Email           string    `json:"email"`
	Message         string    `json:"message"`
	RequireCallback bool      `json:"requireCallback"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromContact(c contact.Contact) ContactResponse {
	return ContactResponse{
		ID:              c.ID,
		Purpose:         c.Purpose,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		PhoneNumber:     c.PhoneNumber,
		Email:           c.Email,
		Message:         c.Message,
		RequireCallback: c.RequireCallback,
		CreatedAt:       c.CreatedAt,
	}
}

type SubscriberResponse struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Status string    `json:"status"`
}

func FromSubscriber(s contact.Subscriber) SubscriberResponse {
	return SubscriberResponse{ID: s.ID, Email: s.Email, Status: s.Status}
}
