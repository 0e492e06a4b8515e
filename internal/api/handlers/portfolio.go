package handlers

import (
	"net/http"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
	"github.com/ndewijer/VibeInvestor-Backend/internal/validation"
)

// PortfolioHandler handles portfolio-related HTTP requests.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Assets handles GET requests listing the current user's holdings.
//
// Endpoint: GET /api/portfolio
// Response: 200 OK with array of Asset
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Assets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.portfolioService.GetAssets(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveAssets)
		return
	}
	response.RespondJSON(w, http.StatusOK, assets)
}

// CreateAsset handles POST requests adding a holding.
//
// Endpoint: POST /api/portfolio/asset
// Request Body: request.CreateAssetRequest
// Response: 201 Created with {"id": <asset id>}
// Errors:
//   - 400 Bad Request: invalid body or asset type
//   - 500 Internal Server Error: store failure
func (h *PortfolioHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateCreateAsset(req); err != nil {
		respondValidation(w, err)
		return
	}

	asset, err := h.portfolioService.CreateAsset(r.Context(), currentUser(r), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCreateAsset)
		return
	}
	response.RespondJSON(w, http.StatusCreated, map[string]int64{"id": asset.ID})
}

// Summary handles GET requests for the valuation and sector breakdown.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with PortfolioSummary
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.portfolioService.GetPortfolioSummary(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToGetPortfolioSummary)
		return
	}
	response.RespondJSON(w, http.StatusOK, summary)
}
