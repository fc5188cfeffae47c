package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wynngrid/internal/database"
	"wynngrid/internal/domain/project"
)

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO projects (id, user_id, name, location, area, job_cost, project_type, description, images)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.UserID, p.Name, p.Location, p.Area, p.JobCost, p.ProjectType, p.Description, p.Images,
	)
	return err
}

func (r *PostgresProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, selectProject+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx, selectProject+` WHERE id = $1 AND user_id = $2`, id, userID)
	p, err := scanProjectRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p project.Project) error {
	n, err := r.db.Exec(ctx,
		`UPDATE projects
		 SET name = $3, location = $4, area = $5, job_cost = $6, project_type = $7,
		     description = $8, images = $9, updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		p.ID, p.UserID, p.Name, p.Location, p.Area, p.JobCost, p.ProjectType, p.Description, p.Images,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrNotFound
	}
	return nil
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrNotFound
	}
	return nil
}

const selectProject = `SELECT id, user_id, name, location, area, job_cost, project_type, description, images, created_at, updated_at FROM projects`

func scanProjectRow(row database.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Location, &p.Area, &p.JobCost,
		&p.ProjectType, &p.Description, &p.Images, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
