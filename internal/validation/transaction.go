package validation

import (
	"fmt"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// ValidTradeType contains the allowed trade type values.
var ValidTradeType = map[string]bool{
	model.TradeTypeBuy: true, model.TradeTypeSell: true,
}

// ValidateCreateTrade validates a trade creation request.
//
// Required fields:
//   - asset_id: must reference an asset (positive id)
//   - type: must be one of: buy, sell
//
// Quantity, price and commission are stored as given.
func ValidateCreateTrade(req request.CreateTradeRequest) error {
	errors := make(map[string]string)

	if req.AssetID <= 0 {
		errors["asset_id"] = "asset_id is required"
	}

	if req.Type == "" {
		errors["type"] = "type is required"
	} else if !ValidTradeType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
