package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/theimpacts/impacts/internal/auth"
	"github.com/theimpacts/impacts/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	BearerAuth   *auth.BearerTokenMiddleware
	Contacts     store.ContactStoreIface
	Subscribers  store.SubscriberStoreIface
	StatusChecks *store.StatusCheckStore
	CORSOrigins  []string
	Logger       *zap.Logger
}

// NewAPIRouter creates the chi sub-router mounted at /api. Submission routes
// are public; reading and deleting inquiries and subscribers requires a
// bearer token.
func NewAPIRouter(deps Deps) chi.Router {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(jsonContentType)

	r.Get("/", root)

	contacts := &contactsHandler{store: deps.Contacts, log: log}
	newsletter := &newsletterHandler{store: deps.Subscribers, log: log}
	checks := &statusHandler{store: deps.StatusChecks, log: log}

	r.Post("/contact", contacts.Create)
	r.Post("/newsletter", newsletter.Subscribe)
	r.Delete("/newsletter/{email}", newsletter.Unsubscribe)
	r.Post("/status", checks.Create)
	r.Get("/status", checks.List)

	r.Group(func(r chi.Router) {
		r.Use(deps.BearerAuth.Authenticate)
		r.Get("/contact", contacts.List)
		r.Get("/contact/{id}", contacts.Get)
		r.Delete("/contact/{id}", contacts.Delete)
		r.Get("/newsletter", newsletter.List)
	})

	return r
}

// root reports that the API is up.
//
// @Summary  API root
// @Tags     Meta
// @Produce  json
// @Success  200  {object}  RootResponse
// @Router   / [get]
func root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{Message: "The Impacts API is running"})
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
