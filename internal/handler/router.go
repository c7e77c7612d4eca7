package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/theimpacts/impacts/docs/swagger"
	"github.com/theimpacts/impacts/internal/api"
	"github.com/theimpacts/impacts/internal/auth"
	"github.com/theimpacts/impacts/internal/content"
	"github.com/theimpacts/impacts/internal/store"
	"github.com/theimpacts/impacts/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	Submitter      Submitter
	Site           *content.Site
	Legal          *content.Legal
	DB             Pinger
	TokenStore     auth.TokenStore
	Contacts       store.ContactStoreIface
	Subscribers    store.SubscriberStoreIface
	StatusChecks   *store.StatusCheckStore
	CORSOrigins    []string
	SecureCookies  bool
	Logger         *zap.Logger
}

// NewRouter assembles the full chi router with all middleware and routes.
// The JSON API is mounted at /api without the session middleware.
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	r.Get("/healthz", Healthz(deps.DB))
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/api", api.NewAPIRouter(api.Deps{
		BearerAuth:   auth.NewBearerTokenMiddleware(deps.TokenStore, log),
		Contacts:     deps.Contacts,
		Subscribers:  deps.Subscribers,
		StatusChecks: deps.StatusChecks,
		CORSOrigins:  deps.CORSOrigins,
		Logger:       log,
	}))
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	p := pages{site: deps.Site, secureCookies: deps.SecureCookies}
	forms := NewFormsHandler(deps.SessionManager, deps.Submitter, log)
	landing := NewLandingHandler(p, forms)
	legal := NewLegalHandler(p, deps.Legal)
	theme := NewThemeHandler(deps.SecureCookies, log)

	r.Group(func(r chi.Router) {
		r.Use(deps.SessionManager.LoadAndSave)

		r.Get("/", landing.Index)
		r.Get("/portfolio", landing.Portfolio)
		r.Get("/pricing", landing.Pricing)
		r.Get("/privacy-policy", legal.Privacy)
		r.Get("/terms-of-service", legal.Terms)

		r.Post("/contact", forms.Contact)
		r.Get("/contact/status", forms.ContactStatus)
		r.Post("/newsletter", forms.Newsletter)
		r.Get("/newsletter/status", forms.NewsletterStatus)

		r.Post("/theme", theme.Toggle)
	})

	return r
}
