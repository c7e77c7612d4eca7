package auth

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
)

// Session keys holding per-visitor form and status state.
const (
	SessionContactStatusKey    = "contact_status"
	SessionNewsletterStatusKey = "newsletter_status"
	SessionContactFormKey      = "contact_form"
	SessionNewsletterFormKey   = "newsletter_form"
)

// NewSessionManager creates an SCS session manager backed by the application DB.
// The driver parameter selects the appropriate store: "mysql", "postgres", or
// "sqlite3" (default). Cookies are marked Secure unless insecure is set, which
// is only meant for plain-HTTP local development.
func NewSessionManager(db *sqlx.DB, driver string, lifetime time.Duration, insecure bool) *scs.SessionManager {
	sm := scs.New()
	switch driver {
	case "mysql":
		sm.Store = mysqlstore.New(db.DB)
	case "postgres":
		sm.Store = postgresstore.New(db.DB)
	default: // sqlite3
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = lifetime
	sm.Cookie.Name = "impacts_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !insecure
	return sm
}
