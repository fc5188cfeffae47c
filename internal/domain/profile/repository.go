package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

type Repository interface {
	// Create inserts the profile and its averages in one transaction.
	Create(ctx context.Context, p Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error)

	// Update rewrites the profile row; when replaceAverages is true the
	// existing averages are deleted and p.Averages inserted in the same
	// transaction.
	Update(ctx context.Context, p Profile, replaceAverages bool) error

	// Delete removes averages then the profile, transactionally.
	Delete(ctx context.Context, userID uuid.UUID) error
}
