package model

import "time"

// Asset types accepted by the portfolio_assets CHECK constraint.
const (
	AssetTypeStock  = "stock"
	AssetTypeFund   = "fund"
	AssetTypeBond   = "bond"
	AssetTypeCrypto = "crypto"
)

// AssetTypes lists every valid asset type.
var AssetTypes = []string{AssetTypeStock, AssetTypeFund, AssetTypeBond, AssetTypeCrypto}

// Asset is a holding in a user's portfolio. Its value is derived from
// quantity and average purchase price and is never stored.
type Asset struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	AvgPrice  float64   `json:"avg_price"`
	Sector    string    `json:"sector"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Value is quantity × avg_price. avg_price stands in for the market price.
func (a Asset) Value() float64 {
	return a.Quantity * a.AvgPrice
}

// SectorAllocation is one slice of the sector breakdown.
type SectorAllocation struct {
	Sector     string  `json:"sector"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// PortfolioSummary represents the valuation of a user's holdings.
// All monetary values are rounded to two decimal places.
type PortfolioSummary struct {
	TotalValue float64            `json:"totalValue"`
	AssetCount int                `json:"assetCount"`
	Sectors    []SectorAllocation `json:"sectors"`
}
