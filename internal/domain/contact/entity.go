package contact

import (
	"time"

	"github.com/google/uuid"
)

const (
	PurposeQuery    = "Query"
	PurposeFeedback = "Feedback"
	PurposeSupport  = "Support"
	PurposeBusiness = "Business"
)

const SubscriberStatusPending = "PENDING"

type Contact struct {
	ID              uuid.UUID
	Purpose         string
	FirstName       string
	LastName        string
	PhoneNumber     string
	Email           string
	Message         string
	RequireCallback bool
	CreatedAt       time.Time
}

type Subscriber struct {
	ID        uuid.UUID
	Email     string
	Status    string
	CreatedAt time.Time
}

func ValidPurpose(p string) bool {
	switch p {
	case PurposeQuery, PurposeFeedback, PurposeSupport, PurposeBusiness:
		return true
	}
	return false
}
