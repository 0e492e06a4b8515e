package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// RoundingPrecision is the multiplier used by round for two decimal places.
const RoundingPrecision = 100.0

// round rounds to kopecks: round(82486.3712) == 82486.37.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// rubles formats a major-unit amount for display, e.g. "3.000,00 ₽".
func rubles(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.RUB)
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, money.RUB).Display()
}

// withTx runs fn inside a single write transaction. The connection DSN sets
// _txlock=immediate, so BEGIN already holds the write lock.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
