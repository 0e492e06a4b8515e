package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

func tradesWithCommission(n int, commission float64, at time.Time) []model.Trade {
	trades := make([]model.Trade, n)
	for i := range trades {
		trades[i] = model.Trade{ID: int64(i + 1), Type: model.TradeTypeBuy, Commission: commission, CreatedAt: at}
	}
	return trades
}

// TestComputeCommissionStats tests the commission windows and savings estimate.
//
// WHY: High-frequency trading is the behaviour the savings hint exists to
// discourage. The threshold is strict: exactly 15 trades is not high frequency.
func TestComputeCommissionStats(t *testing.T) {
	now := time.Date(2026, time.June, 15, 14, 30, 0, 0, time.UTC)
	recent := now.Add(-48 * time.Hour)

	t.Run("15 monthly trades yield no savings", func(t *testing.T) {
		stats := service.ComputeCommissionStats(tradesWithCommission(15, 50, recent), 100000, now)

		assert.Equal(t, 15, stats.Month.TradeCount)
		assert.Equal(t, 0.0, stats.PotentialAnnualSavings)
		assert.False(t, stats.HighFrequency)
	})

	t.Run("20 monthly trades at 50 yield 3000 annual savings", func(t *testing.T) {
		stats := service.ComputeCommissionStats(tradesWithCommission(20, 50, recent), 100000, now)

		assert.Equal(t, 20, stats.Month.TradeCount)
		assert.Equal(t, 1000.0, stats.Month.Total)
		assert.Equal(t, 50.0, stats.Month.AverageCommission)
		assert.Equal(t, 1.0, stats.Month.PercentOfValue)
		assert.Equal(t, 3000.0, stats.PotentialAnnualSavings)
		assert.True(t, stats.HighFrequency)
		assert.True(t, strings.Contains(stats.PotentialSavingsDisplay, "₽"), stats.PotentialSavingsDisplay)
	})

	t.Run("year window includes older trades the month window excludes", func(t *testing.T) {
		trades := append(
			tradesWithCommission(2, 10, recent),
			tradesWithCommission(3, 20, now.AddDate(0, -3, 0))...,
		)
		stats := service.ComputeCommissionStats(trades, 0, now)

		assert.Equal(t, 2, stats.Month.TradeCount)
		assert.Equal(t, 20.0, stats.Month.Total)
		assert.Equal(t, 5, stats.Year.TradeCount)
		assert.Equal(t, 80.0, stats.Year.Total)
		assert.Equal(t, 16.0, stats.Year.AverageCommission)
	})

	t.Run("zero portfolio value yields zero percentage", func(t *testing.T) {
		stats := service.ComputeCommissionStats(tradesWithCommission(1, 99, recent), 0, now)
		assert.Equal(t, 0.0, stats.Month.PercentOfValue)
	})

	t.Run("month window starts at local midnight one month back", func(t *testing.T) {
		boundary := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
		trades := []model.Trade{
			{Commission: 1, CreatedAt: boundary},
			{Commission: 1, CreatedAt: boundary.Add(-time.Second)},
		}
		stats := service.ComputeCommissionStats(trades, 0, now)
		assert.Equal(t, 1, stats.Month.TradeCount)
		assert.Equal(t, 2, stats.Year.TradeCount)
	})

	t.Run("empty history", func(t *testing.T) {
		stats := service.ComputeCommissionStats(nil, 1000, now)
		assert.Equal(t, 0, stats.Year.TradeCount)
		assert.Equal(t, 0.0, stats.Year.AverageCommission)
	})
}
