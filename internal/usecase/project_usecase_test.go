package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"wynngrid/internal/domain/project"
	"wynngrid/internal/pkg/upload"
)

func validCreateProjectInput() CreateProjectInput {
	return CreateProjectInput{
		Name:        "Lakeside Villa",
		ProjectType: project.TypeResidential,
		Location:    "Pune",
		Area:        2400,
		JobCost:     150000,
		Images:      []upload.File{mockFile{name: "1.jpg"}, mockFile{name: "2.jpg"}},
	}
}

func TestCreateProject_RequiredFields(t *testing.T) {
	uc := NewProjectUsecase(newMockProjectRepo(), &mockUploader{}, nil, discardLogger())

	tests := []struct {
		name   string
		mutate func(*CreateProjectInput)
	}{
		{"empty name", func(in *CreateProjectInput) { in.Name = "" }},
		{"blank name", func(in *CreateProjectInput) { in.Name = "   " }},
		{"empty location", func(in *CreateProjectInput) { in.Location = "" }},
		{"zero area", func(in *CreateProjectInput) { in.Area = 0 }},
		{"negative area", func(in *CreateProjectInput) { in.Area = -10 }},
		{"zero jobCost", func(in *CreateProjectInput) { in.JobCost = 0 }},
		{"all missing", func(in *CreateProjectInput) {
			in.Name, in.Location, in.Area, in.JobCost = "", "", 0, 0
		}},
	}
	for _, tc := range tests {
		in := validCreateProjectInput()
		tc.mutate(&in)
		if _, err := uc.Create(context.Background(), uuid.New(), in); !errors.Is(err, ErrMissingProjectFields) {
			t.Fatalf("%s: expected ErrMissingProjectFields, got %v", tc.name, err)
		}
	}
}

func TestCreateProject_Validation(t *testing.T) {
	uc := NewProjectUsecase(newMockProjectRepo(), &mockUploader{}, nil, discardLogger())

	in := validCreateProjectInput()
	in.ProjectType = "Industrial"
	if _, err := uc.Create(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidProjectType) {
		t.Fatalf("expected ErrInvalidProjectType, got %v", err)
	}

	in = validCreateProjectInput()
	in.Images = in.Images[:1]
	if _, err := uc.Create(context.Background(), uuid.New(), in); !errors.Is(err, ErrTooFewImages) {
		t.Fatalf("expected ErrTooFewImages, got %v", err)
	}
}

func TestCreateProject_Success(t *testing.T) {
	repo := newMockProjectRepo()
	cache := newMockCache()
	uc := NewProjectUsecase(repo, &mockUploader{}, cache, discardLogger())
	userID := uuid.New()

	p, err := uc.Create(context.Background(), userID, validCreateProjectInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.UserID != userID {
		t.Fatalf("expected owner %s, got %s", userID, p.UserID)
	}
	if len(p.Images) != 2 {
		t.Fatalf("expected 2 uploaded image urls, got %v", p.Images)
	}
	if len(cache.deleted) == 0 {
		t.Fatalf("expected listing cache invalidation")
	}
}

func TestGetProject_OwnerScoped(t *testing.T) {
	owner := uuid.New()
	p := project.Project{ID: uuid.New(), UserID: owner, Images: []string{"a", "b"}}
	uc := NewProjectUsecase(newMockProjectRepo(p), &mockUploader{}, nil, discardLogger())

	if _, err := uc.Get(context.Background(), p.ID, uuid.New()); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("another user's project must read as not found, got %v", err)
	}
	if _, err := uc.Get(context.Background(), p.ID, owner); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestUpdateProject_AppendsImagesAndKeepsFields(t *testing.T) {
	owner := uuid.New()
	p := project.Project{
		ID: uuid.New(), UserID: owner,
		Name: "Old", Location: "Pune",
		ProjectType: project.TypeCommercial,
		Images:      []string{"a", "b"},
	}
	uc := NewProjectUsecase(newMockProjectRepo(p), &mockUploader{}, newMockCache(), discardLogger())

	name := "New"
	got, err := uc.Update(context.Background(), p.ID, owner, UpdateProjectInput{
		Name:   &name,
		Images: []upload.File{mockFile{name: "c.jpg"}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "New" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
	if got.Location != "Pune" {
		t.Fatalf("absent fields must stay untouched")
	}
	if len(got.Images) != 3 {
		t.Fatalf("new images must append, got %v", got.Images)
	}
}

func TestUpdateProject_RejectsInvalidType(t *testing.T) {
	owner := uuid.New()
	p := project.Project{ID: uuid.New(), UserID: owner, ProjectType: project.TypeOther, Images: []string{"a", "b"}}
	uc := NewProjectUsecase(newMockProjectRepo(p), &mockUploader{}, nil, discardLogger())

	bad := "Industrial"
	if _, err := uc.Update(context.Background(), p.ID, owner, UpdateProjectInput{ProjectType: &bad}); !errors.Is(err, ErrInvalidProjectType) {
		t.Fatalf("expected ErrInvalidProjectType, got %v", err)
	}
}

func TestDeleteImage_EnforcesFloor(t *testing.T) {
	owner := uuid.New()
	p := project.Project{ID: uuid.New(), UserID: owner, Images: []string{"a", "b", "c"}}
	repo := newMockProjectRepo(p)
	uc := NewProjectUsecase(repo, &mockUploader{}, newMockCache(), discardLogger())

	if _, err := uc.DeleteImage(context.Background(), p.ID, owner, 5); !errors.Is(err, ErrInvalidImageIndex) {
		t.Fatalf("expected ErrInvalidImageIndex, got %v", err)
	}

	got, err := uc.DeleteImage(context.Background(), p.ID, owner, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Images) != 2 || got.Images[0] != "a" || got.Images[1] != "c" {
		t.Fatalf("unexpected images %v", got.Images)
	}

	// Already at the floor, further removal must be refused.
	if _, err := uc.DeleteImage(context.Background(), p.ID, owner, 0); !errors.Is(err, ErrTooFewImages) {
		t.Fatalf("expected ErrTooFewImages, got %v", err)
	}
}

func TestDeleteProject(t *testing.T) {
	owner := uuid.New()
	p := project.Project{ID: uuid.New(), UserID: owner, Images: []string{"a", "b"}}
	repo := newMockProjectRepo(p)
	cache := newMockCache()
	uc := NewProjectUsecase(repo, &mockUploader{}, cache, discardLogger())

	if err := uc.Delete(context.Background(), p.ID, uuid.New()); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
	if err := uc.Delete(context.Background(), p.ID, owner); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.deleted) == 0 {
		t.Fatalf("expected listing cache invalidation")
	}
}
