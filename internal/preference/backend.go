package preference

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/buntdb"
)

// BuntBackend stores preferences in a buntdb file with every write fsynced.
type BuntBackend struct {
	db *buntdb.DB
}

// OpenBunt opens (or creates) the preference database at path. Use ":memory:"
// for a throwaway store.
func OpenBunt(path string) (*BuntBackend, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create preference dir: %w", err)
		}
	}
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open preference db: %w", err)
	}

	var cfg buntdb.Config
	if err := db.ReadConfig(&cfg); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("read preference db config: %w", err)
	}
	cfg.SyncPolicy = buntdb.Always
	if err := db.SetConfig(cfg); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set preference db config: %w", err)
	}
	return &BuntBackend{db: db}, nil
}

// Get implements Backend.
func (b *BuntBackend) Get(key string) (string, bool, error) {
	var val string
	err := b.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			return err
		}
		val = v
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set implements Backend.
func (b *BuntBackend) Set(key, value string) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, value, nil)
		return err
	})
}

// Close flushes and closes the database.
func (b *BuntBackend) Close() error { return b.db.Close() }

// CookieBackend keeps preferences in browser cookies for the lifetime of one
// request/response pair. Values written during the request are visible to
// later Gets on the same backend.
type CookieBackend struct {
	r       *http.Request
	w       http.ResponseWriter
	secure  bool
	written map[string]string
}

// NewCookieBackend wraps a request/response pair.
func NewCookieBackend(w http.ResponseWriter, r *http.Request, secure bool) *CookieBackend {
	return &CookieBackend{r: r, w: w, secure: secure, written: map[string]string{}}
}

// Get implements Backend.
func (c *CookieBackend) Get(key string) (string, bool, error) {
	if v, ok := c.written[key]; ok {
		return v, true, nil
	}
	ck, err := c.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	v, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set implements Backend. The cookie is readable by page scripts so the
// anti-flash snippet can apply the class before first paint.
func (c *CookieBackend) Set(key, value string) error {
	c.written[key] = value
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
		HttpOnly: false,
	})
	return nil
}
