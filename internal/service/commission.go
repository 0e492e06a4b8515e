package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// HighFrequencyThreshold is the monthly trade count above which savings are suggested.
const HighFrequencyThreshold = 15

// monthWindowStart is local midnight of now minus one calendar month.
// time.Date normalises overflow, so Mar 31 minus a month is Mar 3 (or Mar 2).
func monthWindowStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())
}

// yearWindowStart is local midnight of now minus one calendar year.
func yearWindowStart(now time.Time) time.Time {
	return time.Date(now.Year()-1, now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ComputeCommissionStats aggregates commissions of trades created on or after
// the start of each window. Sums use decimal arithmetic.
func ComputeCommissionStats(trades []model.Trade, portfolioValue float64, now time.Time) model.CommissionStats {
	month := commissionWindow(trades, monthWindowStart(now), portfolioValue)
	year := commissionWindow(trades, yearWindowStart(now), portfolioValue)

	savings := decimal.Zero
	if month.count > HighFrequencyThreshold {
		savings = decimal.NewFromInt(int64(month.count - HighFrequencyThreshold)).
			Mul(month.average).
			Mul(decimal.NewFromInt(12))
	}

	return model.CommissionStats{
		Month:                   month.view(),
		Year:                    year.view(),
		PotentialAnnualSavings:  savings.InexactFloat64(),
		PotentialSavingsDisplay: rubles(savings),
		HighFrequency:           month.count > HighFrequencyThreshold,
	}
}

type windowTotals struct {
	total   decimal.Decimal
	percent decimal.Decimal
	average decimal.Decimal
	count   int
}

func commissionWindow(trades []model.Trade, from time.Time, portfolioValue float64) windowTotals {
	w := windowTotals{total: decimal.Zero, percent: decimal.Zero, average: decimal.Zero}
	for _, t := range trades {
		if t.CreatedAt.Before(from) {
			continue
		}
		w.total = w.total.Add(decimal.NewFromFloat(t.Commission))
		w.count++
	}
	if w.count > 0 {
		w.average = w.total.Div(decimal.NewFromInt(int64(w.count)))
	}
	if portfolioValue > 0 {
		w.percent = w.total.Div(decimal.NewFromFloat(portfolioValue)).Mul(decimal.NewFromInt(100))
	}
	return w
}

func (w windowTotals) view() model.CommissionWindow {
	return model.CommissionWindow{
		Total:             w.total.Round(2).InexactFloat64(),
		PercentOfValue:    w.percent.Round(4).InexactFloat64(),
		TradeCount:        w.count,
		AverageCommission: w.average.Round(2).InexactFloat64(),
		TotalDisplay:      rubles(w.total),
	}
}
