package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theimpacts/impacts/internal/auth"
	"github.com/theimpacts/impacts/internal/store"
	"github.com/theimpacts/impacts/internal/testutil"
)

func TestGenerateToken(t *testing.T) {
	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if !strings.HasPrefix(plaintext, auth.TokenPrefix) {
		t.Errorf("plaintext %q missing prefix %q", plaintext, auth.TokenPrefix)
	}
	if len(plaintext) < len(auth.TokenPrefix)+32 {
		t.Errorf("plaintext too short: %q", plaintext)
	}
	if len(hash) != 64 {
		t.Errorf("hash length = %d, want 64", len(hash))
	}
	if got := auth.HashToken(plaintext); got != hash {
		t.Errorf("HashToken = %q, want %q", got, hash)
	}

	other, _, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if other == plaintext {
		t.Error("expected distinct tokens")
	}
}

func TestTokenStore_CreateAndGetByHash(t *testing.T) {
	ts := auth.NewSQLTokenStore(testutil.NewTestDB(t))
	ctx := context.Background()

	_, hash, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	rec, err := ts.Create(ctx, "ci", hash, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := ts.GetByHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if got.ID != rec.ID || got.Name != "ci" {
		t.Errorf("got %+v, want id %q name ci", got, rec.ID)
	}
	if !got.Active(time.Now()) {
		t.Error("new token should be active")
	}

	if _, err := ts.GetByHash(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown hash err = %v, want ErrNotFound", err)
	}
}

func TestTokenStore_Revoke(t *testing.T) {
	ts := auth.NewSQLTokenStore(testutil.NewTestDB(t))
	ctx := context.Background()

	rec, err := ts.Create(ctx, "ci", auth.HashToken("impacts_x"), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := ts.Revoke(ctx, rec.ID); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if err := ts.Revoke(ctx, rec.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second revoke err = %v, want ErrNotFound", err)
	}

	got, err := ts.GetByHash(ctx, rec.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if got.Active(time.Now()) {
		t.Error("revoked token should not be active")
	}
}

func TestTokenStore_List(t *testing.T) {
	ts := auth.NewSQLTokenStore(testutil.NewTestDB(t))
	ctx := context.Background()

	exp := time.Now().Add(time.Hour)
	if _, err := ts.Create(ctx, "a", auth.HashToken("impacts_a"), nil); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	if _, err := ts.Create(ctx, "b", auth.HashToken("impacts_b"), &exp); err != nil {
		t.Fatalf("Create b: %v", err)
	}

	list, err := ts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
}

func TestTokenRecord_Active_Expired(t *testing.T) {
	rec := &auth.TokenRecord{}
	rec.ExpiresAt.Valid = true
	rec.ExpiresAt.Time = time.Now().Add(-time.Minute)
	if rec.Active(time.Now()) {
		t.Error("expired token should not be active")
	}
}
