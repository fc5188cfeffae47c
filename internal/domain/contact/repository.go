package contact

import (
	"context"
	"errors"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type Repository interface {
	CreateContact(ctx context.Context, c Contact) error
	CreateSubscriber(ctx context.Context, s Subscriber) error
	SubscriberExists(ctx context.Context, email string) (bool, error)
}
