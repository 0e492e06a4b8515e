package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/database"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// timeLayouts are tried in order. The driver hands DATETIME columns back as
// time.Time, which database/sql renders as RFC3339Nano when scanned into a string.
var timeLayouts = []string{
	time.RFC3339Nano,
	database.TimeLayout,
	"2006-01-02",
}

// ParseTime parses a timestamp column value.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse timestamp %q", str)
}

// FormatTime renders t in the stored timestamp format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(database.TimeLayout)
}

// placeholders returns "?,?,…" for n arguments.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// maxInArgs bounds the ids bound into one IN list, well below SQLite's
// variable limit.
const maxInArgs = 500

// forEachChunk calls fn with consecutive slices of ids of at most maxInArgs.
func forEachChunk(ids []int64, fn func(chunk []int64) error) error {
	for start := 0; start < len(ids); start += maxInArgs {
		end := min(start+maxInArgs, len(ids))
		if err := fn(ids[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

// mapWriteError converts constraint failures into ErrConstraintViolation.
func mapWriteError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: %s", apperrors.ErrConstraintViolation, sqliteErr.Error())
	}
	return err
}
