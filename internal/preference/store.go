// Package preference persists the visitor's dark-mode choice and applies it
// to whatever renders the UI.
package preference

import (
	"encoding/json"
	"strconv"

	"go.uber.org/zap"
)

// Key is the storage key holding the JSON-encoded dark-mode boolean.
const Key = "darkMode"

// Backend is a durable string key-value store.
type Backend interface {
	// Get returns the stored value and whether it exists.
	Get(key string) (string, bool, error)
	// Set writes value synchronously.
	Set(key, value string) error
}

// Store reads and writes one boolean preference through a Backend.
type Store struct {
	backend Backend
	key     string
	log     *zap.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) StoreOption {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger for soft failures.
func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// NewStore returns a Store over b.
func NewStore(b Backend, opts ...StoreOption) *Store {
	s := &Store{backend: b, key: Key, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored preference. A missing, unreadable or unparseable
// value yields false.
func (s *Store) Load() bool {
	raw, ok, err := s.backend.Get(s.key)
	if err != nil {
		s.log.Warn("read preference", zap.String("key", s.key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	var v bool
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Debug("ignoring unparseable preference", zap.String("key", s.key), zap.String("value", raw))
		return false
	}
	return v
}

// Save writes v as a JSON boolean.
func (s *Store) Save(v bool) error {
	return s.backend.Set(s.key, strconv.FormatBool(v))
}
