package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// PostRepository provides data access methods for the posts and comments tables.
type PostRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPostRepository creates a new PostRepository with the provided database connection.
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// WithTx returns a new PostRepository scoped to the provided transaction.
func (r *PostRepository) WithTx(tx *sql.Tx) *PostRepository {
	return &PostRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *PostRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const postColumns = `p.id, p.user_id, u.username, p.content, p.is_trade_share, p.trade_id, p.created_at`

// GetFeedPosts retrieves posts newest first joined to the author's username.
// With subscriptionsOnly set, only authors followed by viewerID are included.
func (r *PostRepository) GetFeedPosts(ctx context.Context, viewerID int64, subscriptionsOnly bool) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON p.user_id = u.id
	`
	args := []any{}
	if subscriptionsOnly {
		query += `
		WHERE p.user_id IN (SELECT following_id FROM subscriptions WHERE follower_id = ?)
		`
		args = append(args, viewerID)
	}
	query += ` ORDER BY p.created_at DESC, p.id DESC`

	return r.queryPosts(ctx, query, args...)
}

// GetPostsByUser retrieves the posts of one author, newest first.
func (r *PostRepository) GetPostsByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC, p.id DESC
	`
	return r.queryPosts(ctx, query, userID)
}

func (r *PostRepository) queryPosts(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts table: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts table: %w", err)
	}
	return posts, nil
}

// EnsurePost returns ErrPostNotFound if no post with the given ID exists.
func (r *PostRepository) EnsurePost(ctx context.Context, postID int64) error {
	var id int64
	err := r.getQuerier().QueryRowContext(ctx, `SELECT id FROM posts WHERE id = ?`, postID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query posts table: %w", err)
	}
	return nil
}

// InsertPost stores a post and sets its ID.
func (r *PostRepository) InsertPost(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (user_id, content, is_trade_share, trade_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.getQuerier().ExecContext(ctx, query, p.UserID, p.Content, p.IsTradeShare, p.TradeID, FormatTime(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", mapWriteError(err))
	}

	p.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read post id: %w", err)
	}
	return nil
}

// GetCommentsForPosts retrieves the comments of the given posts grouped by
// post ID, oldest first within each post.
func (r *PostRepository) GetCommentsForPosts(ctx context.Context, postIDs []int64) (map[int64][]model.Comment, error) {
	comments := make(map[int64][]model.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return comments, nil
	}

	err := forEachChunk(postIDs, func(chunk []int64) error {
		//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
		query := `
			SELECT c.id, c.post_id, c.user_id, u.username, c.content, c.created_at
			FROM comments c
			JOIN users u ON c.user_id = u.id
			WHERE c.post_id IN (` + placeholders(len(chunk)) + `)
			ORDER BY c.created_at ASC, c.id ASC
		`

		rows, err := r.getQuerier().QueryContext(ctx, query, int64Args(chunk)...)
		if err != nil {
			return fmt.Errorf("failed to query comments table: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c model.Comment
			var createdAt string
			if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Username, &c.Content, &createdAt); err != nil {
				return fmt.Errorf("failed to scan comment: %w", err)
			}
			if c.CreatedAt, err = ParseTime(createdAt); err != nil {
				return err
			}
			comments[c.PostID] = append(comments[c.PostID], c)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating comments table: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// InsertComment stores a comment and sets its ID.
func (r *PostRepository) InsertComment(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO comments (post_id, user_id, content, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.getQuerier().ExecContext(ctx, query, c.PostID, c.UserID, c.Content, FormatTime(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", mapWriteError(err))
	}

	c.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read comment id: %w", err)
	}
	return nil
}

func scanPost(s rowScanner) (model.Post, error) {
	var p model.Post
	var tradeID sql.NullInt64
	var createdAt string
	if err := s.Scan(&p.ID, &p.UserID, &p.Username, &p.Content, &p.IsTradeShare, &tradeID, &createdAt); err != nil {
		return model.Post{}, fmt.Errorf("failed to scan post: %w", err)
	}
	if tradeID.Valid {
		id := tradeID.Int64
		p.TradeID = &id
	}
	var err error
	if p.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Post{}, err
	}
	return p, nil
}
