package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// ReactionRepository provides data access methods for the reactions table.
type ReactionRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewReactionRepository creates a new ReactionRepository with the provided database connection.
func NewReactionRepository(db *sql.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// WithTx returns a new ReactionRepository scoped to the provided transaction.
func (r *ReactionRepository) WithTx(tx *sql.Tx) *ReactionRepository {
	return &ReactionRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *ReactionRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetReactionStats returns, per post, the count of each reaction type that
// has at least one row and whether viewerID is among the reactors.
// Types without rows are absent; callers fill them in.
func (r *ReactionRepository) GetReactionStats(ctx context.Context, postIDs []int64, viewerID int64) (map[int64][]model.ReactionSummary, error) {
	stats := make(map[int64][]model.ReactionSummary, len(postIDs))
	if len(postIDs) == 0 {
		return stats, nil
	}

	err := forEachChunk(postIDs, func(chunk []int64) error {
		//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
		query := `
			SELECT post_id, type, COUNT(*), MAX(CASE WHEN user_id = ? THEN 1 ELSE 0 END)
			FROM reactions
			WHERE post_id IN (` + placeholders(len(chunk)) + `)
			GROUP BY post_id, type
		`

		args := append([]any{viewerID}, int64Args(chunk)...)
		rows, err := r.getQuerier().QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to query reactions table: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var postID int64
			var s model.ReactionSummary
			if err := rows.Scan(&postID, &s.Type, &s.Count, &s.UserReacted); err != nil {
				return fmt.Errorf("failed to scan reaction stats: %w", err)
			}
			stats[postID] = append(stats[postID], s)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating reactions table: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetReactionCounts returns the global count per reaction type that has rows.
func (r *ReactionRepository) GetReactionCounts(ctx context.Context) ([]model.ReactionCount, error) {
	rows, err := r.getQuerier().QueryContext(ctx, `SELECT type, COUNT(*) FROM reactions GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reactions table: %w", err)
	}
	defer rows.Close()

	counts := []model.ReactionCount{}
	for rows.Next() {
		var c model.ReactionCount
		if err := rows.Scan(&c.Type, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan reaction count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reactions table: %w", err)
	}
	return counts, nil
}

// DeleteReaction removes the exact (post, user, type) row and reports whether one existed.
func (r *ReactionRepository) DeleteReaction(ctx context.Context, postID, userID int64, reactionType string) (bool, error) {
	result, err := r.getQuerier().ExecContext(ctx,
		`DELETE FROM reactions WHERE post_id = ? AND user_id = ? AND type = ?`,
		postID, userID, reactionType,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete reaction: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// InsertReaction adds the (post, user, type) row. An existing row is left untouched.
func (r *ReactionRepository) InsertReaction(ctx context.Context, postID, userID int64, reactionType string) error {
	_, err := r.getQuerier().ExecContext(ctx,
		`INSERT INTO reactions (post_id, user_id, type) VALUES (?, ?, ?)
		ON CONFLICT (post_id, user_id, type) DO NOTHING`,
		postID, userID, reactionType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reaction: %w", mapWriteError(err))
	}
	return nil
}
