package repository

import (
	"context"

	"wynngrid/internal/database"
	"wynngrid/internal/domain/contact"
)

type PostgresContactRepository struct {
	db database.DB
}

func NewPostgresContactRepository(db database.DB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

func (r *PostgresContactRepository) CreateContact(ctx context.Context, c contact.Contact) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO contacts (id, purpose, first_name, last_name, phone_number, email, message, require_callback)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Purpose, c.FirstName, c.LastName, c.PhoneNumber, c.Email, c.Message, c.RequireCallback,
	)
	return err
}

func (r *PostgresContactRepository) CreateSubscriber(ctx context.Context, s contact.Subscriber) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notification_subscribers (id, email, status) VALUES ($1, $2, $3)`,
		s.ID, s.Email, s.Status,
	)
	if err != nil && isUniqueViolation(err) {
		return contact.ErrAlreadySubscribed
	}
	return err
}

func (r *PostgresContactRepository) SubscriberExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM notification_subscribers WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
