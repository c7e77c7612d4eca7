package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/theimpacts/impacts/internal/api"
	"github.com/theimpacts/impacts/internal/auth"
	"github.com/theimpacts/impacts/internal/store"
	"github.com/theimpacts/impacts/internal/testutil"
)

// testEnv holds the router and the real stores behind it.
type testEnv struct {
	Router      http.Handler
	Contacts    *store.ContactStore
	Subscribers *store.SubscriberStore
	TokenStore  *auth.SQLTokenStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	cs := store.NewContactStore(db)
	ss := store.NewSubscriberStore(db)
	ts := auth.NewSQLTokenStore(db)

	router := api.NewAPIRouter(api.Deps{
		BearerAuth:   auth.NewBearerTokenMiddleware(ts, nil),
		Contacts:     cs,
		Subscribers:  ss,
		StatusChecks: store.NewStatusCheckStore(db),
		CORSOrigins:  []string{"https://theimpacts.agency"},
	})
	return &testEnv{Router: router, Contacts: cs, Subscribers: ss, TokenStore: ts}
}

// seedToken creates a real admin token and returns the plaintext Bearer value.
func seedToken(t *testing.T, env *testEnv) string {
	t.Helper()
	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := env.TokenStore.Create(context.Background(), "test-token", hash, nil); err != nil {
		t.Fatalf("create token: %v", err)
	}
	return plaintext
}

// authRequest adds a Bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}
