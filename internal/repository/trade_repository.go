package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// TradeRepository provides data access methods for the trades and trade_analysis tables.
type TradeRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// WithTx returns a new TradeRepository scoped to the provided transaction.
func (r *TradeRepository) WithTx(tx *sql.Tx) *TradeRepository {
	return &TradeRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *TradeRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const tradeColumns = `t.id, t.user_id, t.asset_id, t.type, t.quantity, t.price, t.commission, t.mood, t.note, t.created_at`

// GetTradeJournal retrieves a user's trades joined to asset symbol and name
// and the optional analysis, newest first. Analysis fields are returned as stored.
func (r *TradeRepository) GetTradeJournal(ctx context.Context, userID int64) ([]model.TradeResponse, error) {
	query := `
		SELECT ` + tradeColumns + `,
			a.symbol, a.name,
			ta.reason, ta.what_differently, ta.lesson
		FROM trades t
		JOIN portfolio_assets a ON t.asset_id = a.id
		LEFT JOIN trade_analysis ta ON t.id = ta.trade_id
		WHERE t.user_id = ?
		ORDER BY t.created_at DESC, t.id DESC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades table: %w", err)
	}
	defer rows.Close()

	trades := []model.TradeResponse{}
	for rows.Next() {
		var tr model.TradeResponse
		var createdAt string
		var reason, whatDifferently, lesson sql.NullString
		if err := rows.Scan(
			&tr.ID, &tr.UserID, &tr.AssetID, &tr.Type, &tr.Quantity, &tr.Price,
			&tr.Commission, &tr.Mood, &tr.Note, &createdAt,
			&tr.Symbol, &tr.Name,
			&reason, &whatDifferently, &lesson,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		if tr.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}
		tr.Reason = nullStringPtr(reason)
		tr.WhatDifferently = nullStringPtr(whatDifferently)
		tr.Lesson = nullStringPtr(lesson)
		trades = append(trades, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades table: %w", err)
	}
	return trades, nil
}

// GetRecentTrades retrieves the newest limit trades of a user.
func (r *TradeRepository) GetRecentTrades(ctx context.Context, userID int64, limit int) ([]model.Trade, error) {
	query := `
		SELECT ` + tradeColumns + `
		FROM trades t
		WHERE t.user_id = ?
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT ?
	`
	return r.queryTrades(ctx, query, userID, limit)
}

// GetTradesBetween retrieves a user's trades with from <= created_at < to, oldest first.
func (r *TradeRepository) GetTradesBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.Trade, error) {
	query := `
		SELECT ` + tradeColumns + `
		FROM trades t
		WHERE t.user_id = ? AND t.created_at >= ? AND t.created_at < ?
		ORDER BY t.created_at ASC, t.id ASC
	`
	return r.queryTrades(ctx, query, userID, FormatTime(from), FormatTime(to))
}

func (r *TradeRepository) queryTrades(ctx context.Context, query string, args ...any) ([]model.Trade, error) {
	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades table: %w", err)
	}
	defer rows.Close()

	trades := []model.Trade{}
	for rows.Next() {
		var t model.Trade
		var createdAt string
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.AssetID, &t.Type, &t.Quantity, &t.Price,
			&t.Commission, &t.Mood, &t.Note, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		if t.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades table: %w", err)
	}
	return trades, nil
}

// InsertTrade stores a trade and sets its ID.
func (r *TradeRepository) InsertTrade(ctx context.Context, t *model.Trade) error {
	query := `
		INSERT INTO trades (user_id, asset_id, type, quantity, price, commission, mood, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		t.UserID, t.AssetID, t.Type, t.Quantity, t.Price, t.Commission, t.Mood, t.Note, FormatTime(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", mapWriteError(err))
	}

	t.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trade id: %w", err)
	}
	return nil
}

// InsertTradeAnalysis stores the reflection for a trade and sets its ID.
func (r *TradeRepository) InsertTradeAnalysis(ctx context.Context, a *model.TradeAnalysis) error {
	query := `
		INSERT INTO trade_analysis (trade_id, reason, what_differently, lesson)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.getQuerier().ExecContext(ctx, query, a.TradeID, a.Reason, a.WhatDifferently, a.Lesson)
	if err != nil {
		return fmt.Errorf("failed to insert trade analysis: %w", mapWriteError(err))
	}

	a.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trade analysis id: %w", err)
	}
	return nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
