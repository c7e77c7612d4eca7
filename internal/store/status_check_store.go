package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// StatusCheck is a liveness ping recorded by a client.
type StatusCheck struct {
	ID         string    `db:"id" json:"id"`
	ClientName string    `db:"client_name" json:"client_name"`
	Timestamp  time.Time `db:"checked_at" json:"timestamp"`
}

// StatusCheckStore is the sqlx-backed store for status checks.
type StatusCheckStore struct {
	db *sqlx.DB
}

// NewStatusCheckStore creates a new StatusCheckStore.
func NewStatusCheckStore(db *sqlx.DB) *StatusCheckStore {
	return &StatusCheckStore{db: db}
}

func (s *StatusCheckStore) q(query string) string { return s.db.Rebind(query) }

// Create records a status check for clientName.
func (s *StatusCheckStore) Create(ctx context.Context, clientName string) (*StatusCheck, error) {
	sc := &StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO status_checks (id, client_name, checked_at) VALUES (?, ?, ?)
	`), sc.ID, sc.ClientName, sc.Timestamp)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// List returns status checks oldest first, capped at 1000.
func (s *StatusCheckStore) List(ctx context.Context) ([]*StatusCheck, error) {
	checks := []*StatusCheck{}
	err := s.db.SelectContext(ctx, &checks, s.q(`
		SELECT id, client_name, checked_at FROM status_checks ORDER BY checked_at ASC LIMIT ?
	`), maxList)
	if err != nil {
		return nil, err
	}
	return checks, nil
}
