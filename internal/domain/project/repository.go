package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("project not found")

type Repository interface {
	Create(ctx context.Context, p Project) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Project, error)

	// GetByID is owner-scoped: a project belonging to another account reads
	// as not found.
	GetByID(ctx context.Context, id, userID uuid.UUID) (Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
