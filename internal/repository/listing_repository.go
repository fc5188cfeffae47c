package repository

import (
	"context"

	"github.com/google/uuid"

	"wynngrid/internal/database"
	"wynngrid/internal/domain/profile"
	"wynngrid/internal/domain/project"
	"wynngrid/internal/domain/user"
)

// ProUserRow is one entry of the public pro listing: the account with its
// onboarding profile (when present) and portfolio projects.
type ProUserRow struct {
	User     user.User
	Profile  *profile.Profile
	Projects []project.Project
}

type ListingRepository interface {
	ListProUsers(ctx context.Context) ([]ProUserRow, error)
}

type PostgresListingRepository struct {
	db database.DB
}

func NewPostgresListingRepository(db database.DB) *PostgresListingRepository {
	return &PostgresListingRepository{db: db}
}

func (r *PostgresListingRepository) ListProUsers(ctx context.Context) ([]ProUserRow, error) {
	rows, err := r.db.Query(ctx, selectUser+` WHERE user_type = $1 ORDER BY created_at ASC`, user.TypePro)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProUserRow, 0)
	index := map[uuid.UUID]int{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		index[u.ID] = len(out)
		out = append(out, ProUserRow{User: u, Projects: []project.Project{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	if err := r.attachProfiles(ctx, out, index); err != nil {
		return nil, err
	}
	if err := r.attachAverages(ctx, out, index); err != nil {
		return nil, err
	}
	if err := r.attachProjects(ctx, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresListingRepository) attachProfiles(ctx context.Context, out []ProUserRow, index map[uuid.UUID]int) error {
	rows, err := r.db.Query(ctx,
		selectProfile+` WHERE user_id IN (SELECT id FROM users WHERE user_type = $1)`,
		user.TypePro,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return err
		}
		if i, ok := index[p.UserID]; ok {
			prof := p
			out[i].Profile = &prof
		}
	}
	return rows.Err()
}

func (r *PostgresListingRepository) attachAverages(ctx context.Context, out []ProUserRow, index map[uuid.UUID]int) error {
	rows, err := r.db.Query(ctx,
		`SELECT pa.id, pa.profile_id, pa.project_type, pa.avg_area, pa.avg_value, pa.specializations, p.user_id
		 FROM project_averages pa
		 JOIN profiles p ON p.id = pa.profile_id
		 WHERE p.user_id IN (SELECT id FROM users WHERE user_type = $1)
		 ORDER BY pa.created_at ASC`,
		user.TypePro,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a profile.ProjectAverage
		var userID uuid.UUID
		if err := rows.Scan(&a.ID, &a.ProfileID, &a.ProjectType, &a.AvgArea, &a.AvgValue, &a.Specializations, &userID); err != nil {
			return err
		}
		if i, ok := index[userID]; ok && out[i].Profile != nil {
			out[i].Profile.Averages = append(out[i].Profile.Averages, a)
		}
	}
	return rows.Err()
}

func (r *PostgresListingRepository) attachProjects(ctx context.Context, out []ProUserRow, index map[uuid.UUID]int) error {
	rows, err := r.db.Query(ctx,
		selectProject+` WHERE user_id IN (SELECT id FROM users WHERE user_type = $1) ORDER BY created_at DESC`,
		user.TypePro,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return err
		}
		if i, ok := index[p.UserID]; ok {
			out[i].Projects = append(out[i].Projects, p)
		}
	}
	return rows.Err()
}
