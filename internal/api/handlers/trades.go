package handlers

import (
	"net/http"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
	"github.com/ndewijer/VibeInvestor-Backend/internal/validation"
)

// TradeHandler handles trade journal HTTP requests.
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// CreateTradeResponse is returned after journaling a trade.
type CreateTradeResponse struct {
	ID               int64 `json:"id"`
	AnalysisRecorded bool  `json:"analysis_recorded"`
}

// Trades handles GET requests listing the journal newest first.
//
// Endpoint: GET /api/trades
// Response: 200 OK with array of TradeResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) Trades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.tradeService.GetTrades(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveTrades)
		return
	}
	response.RespondJSON(w, http.StatusOK, trades)
}

// CreateTrade handles POST requests journaling a trade. A nested analysis is
// recorded only for loss-making sells.
//
// Endpoint: POST /api/trades
// Request Body: request.CreateTradeRequest
// Response: 201 Created with CreateTradeResponse
// Errors:
//   - 400 Bad Request: invalid body or fields
//   - 404 Not Found: asset does not exist or is not owned by the user
//   - 500 Internal Server Error: store failure
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateCreateTrade(req); err != nil {
		respondValidation(w, err)
		return
	}

	record, err := h.tradeService.CreateTrade(r.Context(), currentUser(r), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCreateTrade)
		return
	}
	response.RespondJSON(w, http.StatusCreated, CreateTradeResponse{
		ID:               record.Trade.ID,
		AnalysisRecorded: record.Analysis != nil,
	})
}

// Commissions handles GET requests for monthly and yearly commission statistics.
//
// Endpoint: GET /api/trades/commissions
// Response: 200 OK with CommissionStats
func (h *TradeHandler) Commissions(w http.ResponseWriter, r *http.Request) {
	stats, err := h.tradeService.GetCommissionStats(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToGetCommissionStats)
		return
	}
	response.RespondJSON(w, http.StatusOK, stats)
}
