package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SubscriptionRepository provides data access methods for the subscriptions table.
type SubscriptionRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewSubscriptionRepository creates a new SubscriptionRepository with the provided database connection.
func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// WithTx returns a new SubscriptionRepository scoped to the provided transaction.
func (r *SubscriptionRepository) WithTx(tx *sql.Tx) *SubscriptionRepository {
	return &SubscriptionRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *SubscriptionRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// IsSubscribed reports whether followerID follows followingID.
func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, followerID, followingID int64) (bool, error) {
	var exists bool
	err := r.getQuerier().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM subscriptions WHERE follower_id = ? AND following_id = ?)`,
		followerID, followingID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query subscriptions table: %w", err)
	}
	return exists, nil
}

// DeleteSubscription removes the pair and reports whether one existed.
func (r *SubscriptionRepository) DeleteSubscription(ctx context.Context, followerID, followingID int64) (bool, error) {
	result, err := r.getQuerier().ExecContext(ctx,
		`DELETE FROM subscriptions WHERE follower_id = ? AND following_id = ?`,
		followerID, followingID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete subscription: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// InsertSubscription adds the pair. An existing pair is left untouched.
func (r *SubscriptionRepository) InsertSubscription(ctx context.Context, followerID, followingID int64) error {
	_, err := r.getQuerier().ExecContext(ctx,
		`INSERT INTO subscriptions (follower_id, following_id) VALUES (?, ?)
		ON CONFLICT (follower_id, following_id) DO NOTHING`,
		followerID, followingID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert subscription: %w", mapWriteError(err))
	}
	return nil
}
