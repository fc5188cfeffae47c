package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"wynngrid/internal/domain/project"
	"wynngrid/internal/pkg/upload"
)

var (
	ErrMissingProjectFields = errors.New("name, location, area, and jobCost are required")
	ErrInvalidProjectType   = errors.New("projectType must be one of Commercial, Residential, or Other")
	ErrTooFewImages         = errors.New("a project requires at least 2 images")
)

type CreateProjectInput struct {
	Name        string
	ProjectType string
	Location    string
	Area        float64
	JobCost     float64
	Description string
	Images      []upload.File
}

// UpdateProjectInput follows the partial-update convention: nil pointers keep
// stored values, new image uploads append to the gallery.
type UpdateProjectInput struct {
	Name        *string
	ProjectType *string
	Location    *string
	Area        *float64
	JobCost     *float64
	Description *string
	Images      []upload.File
}

type ProjectUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]project.Project, error)
	Get(ctx context.Context, id, userID uuid.UUID) (project.Project, error)
	Create(ctx context.Context, userID uuid.UUID, in CreateProjectInput) (project.Project, error)
	Update(ctx context.Context, id, userID uuid.UUID, in UpdateProjectInput) (project.Project, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteImage(ctx context.Context, id, userID uuid.UUID, index int) (project.Project, error)
}

type Projects struct {
	projects project.Repository
	uploader upload.Uploader
	cache    ListingCache
	logger   *log.Logger
}

func NewProjectUsecase(projects project.Repository, uploader upload.Uploader, cache ListingCache, logger *log.Logger) *Projects {
	return &Projects{projects: projects, uploader: uploader, cache: cache, logger: logger}
}

func (s *Projects) List(ctx context.Context, userID uuid.UUID) ([]project.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

func (s *Projects) Get(ctx context.Context, id, userID uuid.UUID) (project.Project, error) {
	return s.projects.GetByID(ctx, id, userID)
}

func (s *Projects) Create(ctx context.Context, userID uuid.UUID, in CreateProjectInput) (project.Project, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Location) == "" ||
		in.Area <= 0 || in.JobCost <= 0 {
		return project.Project{}, ErrMissingProjectFields
	}
	if !project.ValidType(in.ProjectType) {
		return project.Project{}, ErrInvalidProjectType
	}
	if len(in.Images) < project.MinImages {
		return project.Project{}, ErrTooFewImages
	}

	urls, err := s.uploadAll(ctx, in.Images)
	if err != nil {
		return project.Project{}, err
	}

	p := project.Project{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        in.Name,
		ProjectType: in.ProjectType,
		Location:    in.Location,
		Area:        in.Area,
		JobCost:     in.JobCost,
		Description: in.Description,
		Images:      urls,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return project.Project{}, err
	}

	invalidateProUsers(ctx, s.cache)
	return s.projects.GetByID(ctx, p.ID, userID)
}

func (s *Projects) Update(ctx context.Context, id, userID uuid.UUID, in UpdateProjectInput) (project.Project, error) {
	p, err := s.projects.GetByID(ctx, id, userID)
	if err != nil {
		return project.Project{}, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.ProjectType != nil {
		if !project.ValidType(*in.ProjectType) {
			return project.Project{}, ErrInvalidProjectType
		}
		p.ProjectType = *in.ProjectType
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Area != nil {
		p.Area = *in.Area
	}
	if in.JobCost != nil {
		p.JobCost = *in.JobCost
	}
	if in.Description != nil {
		p.Description = *in.Description
	}

	if len(in.Images) > 0 {
		urls, err := s.uploadAll(ctx, in.Images)
		if err != nil {
			return project.Project{}, err
		}
		p.Images = append(p.Images, urls...)
	}

	if err := s.projects.Update(ctx, p); err != nil {
		return project.Project{}, err
	}

	invalidateProUsers(ctx, s.cache)
	return s.projects.GetByID(ctx, id, userID)
}

func (s *Projects) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.projects.Delete(ctx, id, userID); err != nil {
		return err
	}
	invalidateProUsers(ctx, s.cache)
	return nil
}

func (s *Projects) DeleteImage(ctx context.Context, id, userID uuid.UUID, index int) (project.Project, error) {
	p, err := s.projects.GetByID(ctx, id, userID)
	if err != nil {
		return project.Project{}, err
	}

	if index < 0 || index >= len(p.Images) {
		return project.Project{}, ErrInvalidImageIndex
	}
	// Removing below the floor would leave a gallery the listing cannot
	// render.
	if len(p.Images)-1 < project.MinImages {
		return project.Project{}, ErrTooFewImages
	}

	p.Images = append(p.Images[:index], p.Images[index+1:]...)
	if err := s.projects.Update(ctx, p); err != nil {
		return project.Project{}, err
	}

	invalidateProUsers(ctx, s.cache)
	return p, nil
}

func (s *Projects) uploadAll(ctx context.Context, files []upload.File) ([]string, error) {
	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			url, err := s.uploader.Upload(gctx, f, upload.FolderProjectImages)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
