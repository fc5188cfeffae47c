package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wynngrid/internal/database"
	"wynngrid/internal/domain/user"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, first_name, last_name, password_hash, user_type, is_verified, otp, otp_expiry)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.UserType, u.IsVerified, u.OTP, u.OTPExpiry,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, selectUser+` WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, selectUser+` WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users
		 SET first_name = $2, last_name = $3, password_hash = $4, user_type = $5,
		     is_verified = $6, otp = $7, otp_expiry = $8, updated_at = now()
		 WHERE id = $1`,
		u.ID, u.FirstName, u.LastName, u.PasswordHash, u.UserType, u.IsVerified, u.OTP, u.OTPExpiry,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

// DeleteAccount cascades children before the account row; the whole sequence
// commits or rolls back as one.
func (r *PostgresUserRepository) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	steps := []string{
		`DELETE FROM project_averages WHERE profile_id IN (SELECT id FROM profiles WHERE user_id = $1)`,
		`DELETE FROM projects WHERE user_id = $1`,
		`DELETE FROM profiles WHERE user_id = $1`,
	}
	for _, q := range steps {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}

	n, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}

	return tx.Commit(ctx)
}

const selectUser = `SELECT id, email, first_name, last_name, password_hash, user_type, is_verified, otp, otp_expiry, created_at, updated_at FROM users`

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash,
		&u.UserType, &u.IsVerified, &u.OTP, &u.OTPExpiry, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
