package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique value (e.g. a subscriber email)
	// already exists.
	ErrDuplicate = errors.New("already exists")
)

// maxList caps list endpoints the same way for every store.
const maxList = 1000

// ContactStoreIface exposes contact inquiry operations. Handlers depend on
// this rather than on the database.
type ContactStoreIface interface {
	Create(ctx context.Context, in ContactInput) (*Contact, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	List(ctx context.Context) ([]*Contact, error)
	Delete(ctx context.Context, id string) error
}

// SubscriberStoreIface exposes newsletter subscriber operations.
type SubscriberStoreIface interface {
	Subscribe(ctx context.Context, email string) (*Subscriber, error)
	List(ctx context.Context) ([]*Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	Count(ctx context.Context) (int64, error)
}
