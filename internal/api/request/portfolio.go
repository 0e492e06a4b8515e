package request

// CreateAssetRequest represents the request body for adding a holding
type CreateAssetRequest struct {
	Type     string  `json:"type"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	AvgPrice float64 `json:"avg_price"`
	Sector   string  `json:"sector"`
}
