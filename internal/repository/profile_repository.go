package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wynngrid/internal/database"
	"wynngrid/internal/domain/profile"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p profile.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO profiles (
			id, user_id, profile_pic_url, business_name, contact_number, city,
			service_provider_type, experience_years, graduation_info, associations,
			portfolio_urls, website_url, work_setup_preference, preferred_timeline,
			about_us, comments, banner_image_urls, preferred_work_locations
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		p.ID, p.UserID, p.ProfilePicURL, p.BusinessName, p.ContactNumber, p.City,
		p.ServiceProviderType, p.ExperienceYears, p.GraduationInfo, p.Associations,
		p.PortfolioURLs, p.WebsiteURL, p.WorkSetupPreference, p.PreferredTimeline,
		p.AboutUs, p.Comments, p.BannerImageURLs, p.PreferredWorkLocations,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return profile.ErrAlreadyExists
		}
		return err
	}

	if err := insertAverages(ctx, tx, p.ID, p.Averages); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, selectProfile+` WHERE user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		return profile.Profile{}, err
	}

	avgs, err := r.averagesByProfileID(ctx, p.ID)
	if err != nil {
		return profile.Profile{}, err
	}
	p.Averages = avgs
	return p, nil
}

func (r *PostgresProfileRepository) ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = $1)`, userID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, p profile.Profile, replaceAverages bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	n, err := tx.Exec(ctx,
		`UPDATE profiles SET
			profile_pic_url = $2, business_name = $3, contact_number = $4, city = $5,
			service_provider_type = $6, experience_years = $7, graduation_info = $8,
			associations = $9, portfolio_urls = $10, website_url = $11,
			work_setup_preference = $12, preferred_timeline = $13, about_us = $14,
			comments = $15, banner_image_urls = $16, preferred_work_locations = $17,
			updated_at = now()
		 WHERE id = $1`,
		p.ID, p.ProfilePicURL, p.BusinessName, p.ContactNumber, p.City,
		p.ServiceProviderType, p.ExperienceYears, p.GraduationInfo, p.Associations,
		p.PortfolioURLs, p.WebsiteURL, p.WorkSetupPreference, p.PreferredTimeline,
		p.AboutUs, p.Comments, p.BannerImageURLs, p.PreferredWorkLocations,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return profile.ErrNotFound
	}

	if replaceAverages {
		if _, err := tx.Exec(ctx, `DELETE FROM project_averages WHERE profile_id = $1`, p.ID); err != nil {
			return err
		}
		if err := insertAverages(ctx, tx, p.ID, p.Averages); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresProfileRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`DELETE FROM project_averages WHERE profile_id IN (SELECT id FROM profiles WHERE user_id = $1)`,
		userID,
	)
	if err != nil {
		return err
	}

	n, err := tx.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return profile.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *PostgresProfileRepository) averagesByProfileID(ctx context.Context, profileID uuid.UUID) ([]profile.ProjectAverage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, project_type, avg_area, avg_value, specializations
		 FROM project_averages
		 WHERE profile_id = $1
		 ORDER BY created_at ASC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.ProjectAverage, 0)
	for rows.Next() {
		var a profile.ProjectAverage
		if err := rows.Scan(&a.ID, &a.ProfileID, &a.ProjectType, &a.AvgArea, &a.AvgValue, &a.Specializations); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func insertAverages(ctx context.Context, tx database.Tx, profileID uuid.UUID, avgs []profile.ProjectAverage) error {
	for _, a := range avgs {
		id := a.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		specs := a.Specializations
		if specs == nil {
			specs = []string{}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO project_averages (id, profile_id, project_type, avg_area, avg_value, specializations)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			id, profileID, a.ProjectType, a.AvgArea, a.AvgValue, specs,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

const selectProfile = `SELECT id, user_id, profile_pic_url, business_name, contact_number, city,
	service_provider_type, experience_years, graduation_info, associations,
	portfolio_urls, website_url, work_setup_preference, preferred_timeline,
	about_us, comments, banner_image_urls, preferred_work_locations,
	created_at, updated_at
FROM profiles`

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.ProfilePicURL, &p.BusinessName, &p.ContactNumber, &p.City,
		&p.ServiceProviderType, &p.ExperienceYears, &p.GraduationInfo, &p.Associations,
		&p.PortfolioURLs, &p.WebsiteURL, &p.WorkSetupPreference, &p.PreferredTimeline,
		&p.AboutUs, &p.Comments, &p.BannerImageURLs, &p.PreferredWorkLocations,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}
