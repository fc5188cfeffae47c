package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// Update writes every mutable field: names, password hash, user type,
	// verification flag and the OTP pair.
	Update(ctx context.Context, u User) error

	// DeleteAccount removes the user together with its profile, project
	// averages and projects in a single transaction.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
