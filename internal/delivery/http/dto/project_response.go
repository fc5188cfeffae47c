package dto

import (
	"time"

	"github.com/google/uuid"

	"wynngrid/internal/domain/project"
)

type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Area        float64   `json:"area"`
	JobCost     float64   `json:"jobCost"`
	ProjectType string    `json:"projectType"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromProject(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Location:    p.Location,
		Area:        p.Area,
		JobCost:     p.JobCost,
		ProjectType: p.ProjectType,
		Description: p.Description,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProjects(in []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromProject(p))
	}
	return out
}
