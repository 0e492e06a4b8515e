package validation

import (
	"fmt"
	"slices"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// ValidateCreateAsset mirrors the portfolio_assets CHECK constraint on type.
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	if req.Type == "" {
		errors["type"] = "type is required"
	} else if !slices.Contains(model.AssetTypes, req.Type) {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
