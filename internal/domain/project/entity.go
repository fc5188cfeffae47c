package project

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCommercial  = "Commercial"
	TypeResidential = "Residential"
	TypeOther       = "Other"
)

// MinImages is the image floor a project may never drop below.
const MinImages = 2

// Project is a portfolio entry owned by an account.
type Project struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Location    string
	Area        float64
	JobCost     float64
	ProjectType string
	Description string
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidType(t string) bool {
	switch t {
	case TypeCommercial, TypeResidential, TypeOther:
		return true
	}
	return false
}
