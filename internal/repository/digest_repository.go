package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// DigestRepository provides data access methods for the vibe_digest table.
type DigestRepository struct {
	db *sql.DB
}

// NewDigestRepository creates a new DigestRepository with the provided database connection.
func NewDigestRepository(db *sql.DB) *DigestRepository {
	return &DigestRepository{db: db}
}

// GetLatestDigest retrieves the newest digest row.
// Returns ErrDigestNotFound if none has been stored.
func (r *DigestRepository) GetLatestDigest(ctx context.Context) (model.Digest, error) {
	query := `
		SELECT id, content, created_at
		FROM vibe_digest
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var d model.Digest
	var createdAt string
	err := r.db.QueryRowContext(ctx, query).Scan(&d.ID, &d.Content, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Digest{}, apperrors.ErrDigestNotFound
	}
	if err != nil {
		return model.Digest{}, fmt.Errorf("failed to query vibe_digest table: %w", err)
	}

	t, err := ParseTime(createdAt)
	if err != nil {
		return model.Digest{}, err
	}
	d.CreatedAt = &t
	return d, nil
}

// InsertDigest stores a digest and returns it with ID and timestamp set.
func (r *DigestRepository) InsertDigest(ctx context.Context, content string, createdAt time.Time) (model.Digest, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO vibe_digest (content, created_at) VALUES (?, ?)`,
		content, FormatTime(createdAt),
	)
	if err != nil {
		return model.Digest{}, fmt.Errorf("failed to insert digest: %w", mapWriteError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Digest{}, fmt.Errorf("failed to read digest id: %w", err)
	}
	// Stored with second precision.
	stored := createdAt.UTC().Truncate(time.Second)
	return model.Digest{ID: id, Content: content, CreatedAt: &stored}, nil
}
