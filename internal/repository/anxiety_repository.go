package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// AnxietyRepository provides data access methods for the anxiety_logs table.
type AnxietyRepository struct {
	db *sql.DB
}

// NewAnxietyRepository creates a new AnxietyRepository with the provided database connection.
func NewAnxietyRepository(db *sql.DB) *AnxietyRepository {
	return &AnxietyRepository{db: db}
}

// GetRecentLogs retrieves the newest limit logs of a user, newest first.
func (r *AnxietyRepository) GetRecentLogs(ctx context.Context, userID int64, limit int) ([]model.AnxietyLog, error) {
	query := `
		SELECT id, user_id, level, event, created_at
		FROM anxiety_logs
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	return r.queryLogs(ctx, query, userID, limit)
}

// GetLogsBetween retrieves a user's logs with from <= created_at < to, oldest first.
func (r *AnxietyRepository) GetLogsBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.AnxietyLog, error) {
	query := `
		SELECT id, user_id, level, event, created_at
		FROM anxiety_logs
		WHERE user_id = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at ASC, id ASC
	`
	return r.queryLogs(ctx, query, userID, FormatTime(from), FormatTime(to))
}

func (r *AnxietyRepository) queryLogs(ctx context.Context, query string, args ...any) ([]model.AnxietyLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query anxiety_logs table: %w", err)
	}
	defer rows.Close()

	logs := []model.AnxietyLog{}
	for rows.Next() {
		var l model.AnxietyLog
		var createdAt string
		if err := rows.Scan(&l.ID, &l.UserID, &l.Level, &l.Event, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan anxiety log: %w", err)
		}
		if l.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating anxiety_logs table: %w", err)
	}
	return logs, nil
}

// InsertLog stores a log entry and sets its ID.
func (r *AnxietyRepository) InsertLog(ctx context.Context, l *model.AnxietyLog) error {
	query := `
		INSERT INTO anxiety_logs (user_id, level, event, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, l.UserID, l.Level, l.Event, FormatTime(l.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert anxiety log: %w", mapWriteError(err))
	}

	l.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read anxiety log id: %w", err)
	}
	return nil
}

// CountLogs returns how many logs a user has written.
func (r *AnxietyRepository) CountLogs(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM anxiety_logs WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count anxiety logs: %w", err)
	}
	return count, nil
}

// AverageLevelSince returns the mean level across all users since the given
// time. ok is false when no log falls in the window.
func (r *AnxietyRepository) AverageLevelSince(ctx context.Context, since time.Time) (avg float64, ok bool, err error) {
	var result sql.NullFloat64
	err = r.db.QueryRowContext(ctx,
		`SELECT AVG(level) FROM anxiety_logs WHERE created_at >= ?`,
		FormatTime(since),
	).Scan(&result)
	if err != nil {
		return 0, false, fmt.Errorf("failed to average anxiety logs: %w", err)
	}
	return result.Float64, result.Valid, nil
}
