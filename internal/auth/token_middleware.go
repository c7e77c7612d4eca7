package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type contextKey string

// TokenContextKey holds the authenticated *TokenRecord in the request context.
const TokenContextKey contextKey = "api_token"

// TokenFromContext returns the token that authenticated the request, if any.
func TokenFromContext(ctx context.Context) *TokenRecord {
	rec, _ := ctx.Value(TokenContextKey).(*TokenRecord)
	return rec
}

// BearerTokenMiddleware guards the admin API routes. Session cookies are not
// consulted; only API tokens are accepted.
type BearerTokenMiddleware struct {
	tokens TokenStore
	log    *zap.Logger
	now    func() time.Time
}

// NewBearerTokenMiddleware creates a new BearerTokenMiddleware.
func NewBearerTokenMiddleware(ts TokenStore, log *zap.Logger) *BearerTokenMiddleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &BearerTokenMiddleware{tokens: ts, log: log, now: time.Now}
}

// Authenticate rejects requests without a live bearer token with 401
// {"error":"unauthorized"}. Valid requests get the token record in context
// and an async last_used_at update.
func (m *BearerTokenMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		plaintext, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || plaintext == "" {
			writeUnauthorized(w)
			return
		}

		rec, err := m.tokens.GetByHash(r.Context(), HashToken(plaintext))
		if err != nil {
			writeUnauthorized(w)
			return
		}
		if !rec.Active(m.now()) {
			m.log.Info("rejected inactive api token", zap.String("token_id", rec.ID))
			writeUnauthorized(w)
			return
		}

		go func(id string) {
			if err := m.tokens.UpdateLastUsed(context.Background(), id); err != nil {
				m.log.Warn("update token last_used_at", zap.String("token_id", id), zap.Error(err))
			}
		}(rec.ID)

		ctx := context.WithValue(r.Context(), TokenContextKey, rec)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
