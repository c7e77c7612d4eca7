package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Contact represents a row in the contacts table.
type Contact struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone"`
	Service   string    `db:"service" json:"service"`
	Budget    *string   `db:"budget" json:"budget"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ContactStore is the sqlx-backed store for contact inquiries.
type ContactStore struct {
	db *sqlx.DB
}

// NewContactStore creates a new ContactStore.
func NewContactStore(db *sqlx.DB) *ContactStore {
	return &ContactStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *ContactStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts an inquiry. The input is expected to be validated already.
func (s *ContactStore) Create(ctx context.Context, in ContactInput) (*Contact, error) {
	c := &Contact{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Service:   in.Service,
		Budget:    in.Budget,
		Message:   in.Message,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO contacts (id, name, email, phone, service, budget, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), c.ID, c.Name, c.Email, c.Phone, c.Service, c.Budget, c.Message, c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID returns the inquiry with the given ID, or ErrNotFound.
func (s *ContactStore) GetByID(ctx context.Context, id string) (*Contact, error) {
	var c Contact
	err := s.db.GetContext(ctx, &c, s.q(`
		SELECT id, name, email, phone, service, budget, message, created_at
		FROM contacts WHERE id = ?
	`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns inquiries newest first, capped at 1000.
func (s *ContactStore) List(ctx context.Context) ([]*Contact, error) {
	contacts := []*Contact{}
	err := s.db.SelectContext(ctx, &contacts, s.q(`
		SELECT id, name, email, phone, service, budget, message, created_at
		FROM contacts ORDER BY created_at DESC LIMIT ?
	`), maxList)
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// Delete removes an inquiry by ID.
func (s *ContactStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM contacts WHERE id = ?`), id)
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
