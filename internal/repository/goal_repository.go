package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// GoalRepository provides data access methods for the goals and achievements tables.
type GoalRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// WithTx returns a new GoalRepository scoped to the provided transaction.
func (r *GoalRepository) WithTx(tx *sql.Tx) *GoalRepository {
	return &GoalRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *GoalRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetGoals retrieves a user's goals in creation order. Progress is left for the caller.
func (r *GoalRepository) GetGoals(ctx context.Context, userID int64) ([]model.Goal, error) {
	query := `
		SELECT id, user_id, title, target_value, current_value, type, is_completed, created_at
		FROM goals
		WHERE user_id = ?
		ORDER BY id ASC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}
	for rows.Next() {
		var g model.Goal
		var createdAt string
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.TargetValue, &g.CurrentValue, &g.Type, &g.IsCompleted, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		if g.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals table: %w", err)
	}
	return goals, nil
}

// UpdateGoalProgress stores a recomputed current value and completion flag.
func (r *GoalRepository) UpdateGoalProgress(ctx context.Context, goalID int64, current float64, completed bool) error {
	result, err := r.getQuerier().ExecContext(ctx,
		`UPDATE goals SET current_value = ?, is_completed = ? WHERE id = ?`,
		current, completed, goalID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("goal %d disappeared during sync", goalID)
	}
	return nil
}

// GetAchievements retrieves a user's unlocked achievements, most recent first.
func (r *GoalRepository) GetAchievements(ctx context.Context, userID int64) ([]model.Achievement, error) {
	query := `
		SELECT id, user_id, title, description, icon, unlocked_at
		FROM achievements
		WHERE user_id = ?
		ORDER BY unlocked_at DESC, id DESC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements table: %w", err)
	}
	defer rows.Close()

	achievements := []model.Achievement{}
	for rows.Next() {
		var a model.Achievement
		var unlockedAt string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Icon, &unlockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		if a.UnlockedAt, err = ParseTime(unlockedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievements table: %w", err)
	}
	return achievements, nil
}
