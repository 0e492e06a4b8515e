package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// UserRepository provides data access methods for the users table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUser retrieves a user by ID.
// Returns ErrUserNotFound if no user with the given ID exists.
func (r *UserRepository) GetUser(ctx context.Context, userID int64) (model.User, error) {
	query := `
		SELECT id, username, telegram_id, created_at
		FROM users
		WHERE id = ?
	`

	var u model.User
	var telegramID sql.NullString
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&u.ID, &u.Username, &telegramID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query users table: %w", err)
	}

	if telegramID.Valid {
		u.TelegramID = &telegramID.String
	}
	u.CreatedAt, err = ParseTime(createdAt)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// GetUserIDs returns every user ID in ascending order.
func (r *UserRepository) GetUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users table: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user table: %w", err)
	}
	return ids, nil
}
