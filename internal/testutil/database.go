package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/ndewijer/VibeInvestor-Backend/internal/database"
)

// SetupTestDB opens a private in-memory database and applies every embedded
// migration. It is closed on test cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := database.Migrate(context.Background(), db, zap.NewNop()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// SetupFileTestDB is SetupTestDB on a file in a temp dir, with a connection
// pool, so concurrent writers really contend for the write lock.
func SetupFileTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "vibe_test.db"))
	if err != nil {
		t.Fatalf("open file test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := database.Migrate(context.Background(), db, zap.NewNop()); err != nil {
		t.Fatalf("migrate file test database: %v", err)
	}
	return db
}

// SetupSeededTestDB is SetupTestDB plus the demo seed data.
func SetupSeededTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := SetupTestDB(t)
	if err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return db
}

// AssertRowCount fails the test unless table holds exactly want rows.
//
//	testutil.AssertRowCount(t, db, "reactions", 0)
func AssertRowCount(t *testing.T, db *sql.DB, table string, want int) {
	t.Helper()

	var got int
	//nolint:gosec // table names come from test code only
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
		t.Fatalf("count rows in %s: %v", table, err)
	}
	if got != want {
		t.Errorf("Expected %d rows in %s, got %d", want, table, got)
	}
}
