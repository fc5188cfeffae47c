package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeStandard = "standard"
	TypePro      = "pro"
)

// User is an account record. PasswordHash stays empty for accounts created
// through federated sign-in. OTP and OTPExpiry are either both nil or both
// set.
type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	UserType     string
	IsVerified   bool
	OTP          *string
	OTPExpiry    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
