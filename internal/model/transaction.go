package model

import "time"

// Trade directions accepted by the trades CHECK constraint.
const (
	TradeTypeBuy  = "buy"
	TradeTypeSell = "sell"
)

// Trade is an immutable record of a buy or sell and the mood behind it.
type Trade struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	AssetID    int64     `json:"asset_id"`
	Type       string    `json:"type"`
	Quantity   float64   `json:"quantity"`
	Price      float64   `json:"price"`
	Commission float64   `json:"commission"`
	Mood       string    `json:"mood"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// TradeAnalysis is the reflection recorded for a loss-making sell.
type TradeAnalysis struct {
	ID              int64  `json:"id"`
	TradeID         int64  `json:"trade_id"`
	Reason          string `json:"reason"`
	WhatDifferently string `json:"what_differently"`
	Lesson          string `json:"lesson"`
}

// TradeRecord is the result of creating a trade. Analysis is nil unless the
// trade was a loss-making sell submitted together with a reflection.
type TradeRecord struct {
	Trade    Trade          `json:"trade"`
	Analysis *TradeAnalysis `json:"analysis,omitempty"`
}

// TradeResponse is a trade enriched with its asset and optional analysis
// for the journal listing.
type TradeResponse struct {
	Trade
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Reason          *string `json:"reason"`
	WhatDifferently *string `json:"what_differently"`
	Lesson          *string `json:"lesson"`
}

// CommissionWindow aggregates commissions over one look-back window.
type CommissionWindow struct {
	Total             float64 `json:"total"`
	PercentOfValue    float64 `json:"percentOfValue"`
	TradeCount        int     `json:"tradeCount"`
	AverageCommission float64 `json:"averageCommission"`
	TotalDisplay      string  `json:"totalDisplay"`
}

// CommissionStats summarises fees paid over the last month and year.
type CommissionStats struct {
	Month                   CommissionWindow `json:"month"`
	Year                    CommissionWindow `json:"year"`
	PotentialAnnualSavings  float64          `json:"potentialAnnualSavings"`
	PotentialSavingsDisplay string           `json:"potentialSavingsDisplay"`
	HighFrequency           bool             `json:"highFrequency"`
}
