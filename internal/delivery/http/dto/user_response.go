package dto

import (
	"time"

	"github.com/google/uuid"

	"wynngrid/internal/domain/user"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	UserType   string    `json:"userType"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		UserType:   u.UserType,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
