package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// AssetRepository provides data access methods for the portfolio_assets table.
type AssetRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// WithTx returns a new AssetRepository scoped to the provided transaction.
func (r *AssetRepository) WithTx(tx *sql.Tx) *AssetRepository {
	return &AssetRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *AssetRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const assetColumns = `id, user_id, type, symbol, name, quantity, avg_price, sector, updated_at`

// GetAssets retrieves every holding of a user in insertion order.
// Returns an empty slice if the user holds nothing.
func (r *AssetRepository) GetAssets(ctx context.Context, userID int64) ([]model.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM portfolio_assets WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.getQuerier().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_assets table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_assets table: %w", err)
	}
	return assets, nil
}

// GetAsset retrieves a single holding by ID.
// Returns ErrAssetNotFound if no asset with the given ID exists.
func (r *AssetRepository) GetAsset(ctx context.Context, assetID int64) (model.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM portfolio_assets WHERE id = ?`

	a, err := scanAsset(r.getQuerier().QueryRowContext(ctx, query, assetID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Asset{}, apperrors.ErrAssetNotFound
	}
	if err != nil {
		return model.Asset{}, err
	}
	return a, nil
}

// InsertAsset stores a new holding and sets its ID.
func (r *AssetRepository) InsertAsset(ctx context.Context, a *model.Asset) error {
	query := `
		INSERT INTO portfolio_assets (user_id, type, symbol, name, quantity, avg_price, sector, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		a.UserID, a.Type, a.Symbol, a.Name, a.Quantity, a.AvgPrice, a.Sector, FormatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", mapWriteError(err))
	}

	a.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read asset id: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(s rowScanner) (model.Asset, error) {
	var a model.Asset
	var updatedAt string
	err := s.Scan(&a.ID, &a.UserID, &a.Type, &a.Symbol, &a.Name, &a.Quantity, &a.AvgPrice, &a.Sector, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Asset{}, err
	}
	if err != nil {
		return model.Asset{}, fmt.Errorf("failed to scan asset: %w", err)
	}
	a.UpdatedAt, err = ParseTime(updatedAt)
	if err != nil {
		return model.Asset{}, err
	}
	return a, nil
}
