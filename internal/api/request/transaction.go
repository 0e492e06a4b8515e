package request

// TradeAnalysisRequest carries the reflection for a loss-making sell.
type TradeAnalysisRequest struct {
	Reason          string `json:"reason"`
	WhatDifferently string `json:"what_differently"`
	Lesson          string `json:"lesson"`
}

// Empty reports whether no reflection text was supplied.
func (a *TradeAnalysisRequest) Empty() bool {
	return a == nil || (a.Reason == "" && a.WhatDifferently == "" && a.Lesson == "")
}

// CreateTradeRequest represents the request body for journaling a trade
type CreateTradeRequest struct {
	AssetID    int64                 `json:"asset_id"`
	Type       string                `json:"type"`
	Quantity   float64               `json:"quantity"`
	Price      float64               `json:"price"`
	Commission float64               `json:"commission"`
	Mood       string                `json:"mood"`
	Note       string                `json:"note"`
	Analysis   *TradeAnalysisRequest `json:"analysis,omitempty"`
}
