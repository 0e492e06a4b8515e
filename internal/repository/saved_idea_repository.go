package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// SavedIdeaRepository provides data access methods for the saved_ideas table.
type SavedIdeaRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewSavedIdeaRepository creates a new SavedIdeaRepository with the provided database connection.
func NewSavedIdeaRepository(db *sql.DB) *SavedIdeaRepository {
	return &SavedIdeaRepository{db: db}
}

// WithTx returns a new SavedIdeaRepository scoped to the provided transaction.
func (r *SavedIdeaRepository) WithTx(tx *sql.Tx) *SavedIdeaRepository {
	return &SavedIdeaRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *SavedIdeaRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetSavedIdeas retrieves the posts a user saved, most recently saved first.
func (r *SavedIdeaRepository) GetSavedIdeas(ctx context.Context, userID int64) ([]model.SavedIdea, error) {
	query := `
		SELECT ` + postColumns + `, s.created_at
		FROM saved_ideas s
		JOIN posts p ON s.post_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE s.user_id = ?
		ORDER BY s.created_at DESC, s.id DESC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved_ideas table: %w", err)
	}
	defer rows.Close()

	ideas := []model.SavedIdea{}
	for rows.Next() {
		var idea model.SavedIdea
		var tradeID sql.NullInt64
		var createdAt, savedAt string
		if err := rows.Scan(
			&idea.ID, &idea.UserID, &idea.Username, &idea.Content, &idea.IsTradeShare,
			&tradeID, &createdAt, &savedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan saved idea: %w", err)
		}
		if tradeID.Valid {
			id := tradeID.Int64
			idea.TradeID = &id
		}
		if idea.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}
		if idea.SavedAt, err = ParseTime(savedAt); err != nil {
			return nil, err
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved_ideas table: %w", err)
	}
	return ideas, nil
}

// GetSavedPostIDs returns the subset of postIDs the user has saved.
func (r *SavedIdeaRepository) GetSavedPostIDs(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	saved := make(map[int64]bool)
	if len(postIDs) == 0 {
		return saved, nil
	}

	err := forEachChunk(postIDs, func(chunk []int64) error {
		//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
		query := `
			SELECT post_id FROM saved_ideas
			WHERE user_id = ? AND post_id IN (` + placeholders(len(chunk)) + `)
		`

		args := append([]any{userID}, int64Args(chunk)...)
		rows, err := r.getQuerier().QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to query saved_ideas table: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				return fmt.Errorf("failed to scan saved idea: %w", err)
			}
			saved[id] = true
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating saved_ideas table: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// DeleteSavedIdea removes the bookmark and reports whether one existed.
func (r *SavedIdeaRepository) DeleteSavedIdea(ctx context.Context, userID, postID int64) (bool, error) {
	result, err := r.getQuerier().ExecContext(ctx,
		`DELETE FROM saved_ideas WHERE user_id = ? AND post_id = ?`,
		userID, postID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete saved idea: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// InsertSavedIdea adds the bookmark. An existing bookmark is left untouched.
func (r *SavedIdeaRepository) InsertSavedIdea(ctx context.Context, userID, postID int64, savedAt time.Time) error {
	_, err := r.getQuerier().ExecContext(ctx,
		`INSERT INTO saved_ideas (user_id, post_id, created_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID, FormatTime(savedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert saved idea: %w", mapWriteError(err))
	}
	return nil
}
