package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Subscriber represents a row in the newsletter_subscribers table.
type Subscriber struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
}

// SubscriberStore is the sqlx-backed store for newsletter subscribers.
type SubscriberStore struct {
	db *sqlx.DB
}

// NewSubscriberStore creates a new SubscriberStore.
func NewSubscriberStore(db *sqlx.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

func (s *SubscriberStore) q(query string) string { return s.db.Rebind(query) }

// Subscribe adds email to the list. Emails compare case-insensitively; an
// existing subscriber yields ErrDuplicate.
func (s *SubscriberStore) Subscribe(ctx context.Context, email string) (*Subscriber, error) {
	email = normalizeEmail(email)

	exists, err := s.exists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	sub := &Subscriber{
		ID:           uuid.New().String(),
		Email:        email,
		SubscribedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO newsletter_subscribers (id, email, subscribed_at) VALUES (?, ?, ?)
	`), sub.ID, sub.Email, sub.SubscribedAt)
	if err != nil {
		// A concurrent signup can win between the check and the insert; the
		// unique index rejects ours.
		if again, checkErr := s.exists(ctx, email); checkErr == nil && again {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return sub, nil
}

// List returns subscribers newest first, capped at 1000.
func (s *SubscriberStore) List(ctx context.Context) ([]*Subscriber, error) {
	subs := []*Subscriber{}
	err := s.db.SelectContext(ctx, &subs, s.q(`
		SELECT id, email, subscribed_at FROM newsletter_subscribers
		ORDER BY subscribed_at DESC LIMIT ?
	`), maxList)
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Unsubscribe removes email, or returns ErrNotFound.
func (s *SubscriberStore) Unsubscribe(ctx context.Context, email string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM newsletter_subscribers WHERE email = ?`), normalizeEmail(email))
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of subscribers.
func (s *SubscriberStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM newsletter_subscribers`)
	return n, err
}

func (s *SubscriberStore) exists(ctx context.Context, email string) (bool, error) {
	var id string
	err := s.db.GetContext(ctx, &id, s.q(`SELECT id FROM newsletter_subscribers WHERE email = ?`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
