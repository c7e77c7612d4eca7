package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/theimpacts/impacts/internal/db"
	_ "modernc.org/sqlite"
)

// NewTestDB opens an in-memory SQLite DB and runs all migrations.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// Shared cache lets every pool connection see the same in-memory
	// database; the test name keeps databases apart between tests.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return conn
}
