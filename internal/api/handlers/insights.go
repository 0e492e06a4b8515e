package handlers

import (
	"net/http"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

// InsightsHandler serves AI advice, market sentiment, goals and the daily digest.
type InsightsHandler struct {
	adviceService    *service.AdviceService
	sentimentService *service.SentimentService
	goalService      *service.GoalService
	digestService    *service.DigestService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(
	adviceService *service.AdviceService,
	sentimentService *service.SentimentService,
	goalService *service.GoalService,
	digestService *service.DigestService,
) *InsightsHandler {
	return &InsightsHandler{
		adviceService:    adviceService,
		sentimentService: sentimentService,
		goalService:      goalService,
		digestService:    digestService,
	}
}

// AnalyzePortfolio asks the text generator for advice on the current user's
// portfolio, recent moods and trades. The cause of a generation failure is
// logged by the service and never returned to the client.
//
// Endpoint: POST /api/ai/analyze-portfolio
// Response: 200 OK with Advice
// Errors:
//   - 429 Too Many Requests: rate limited (middleware)
//   - 500 Internal Server Error: {"error": "AI analysis failed"}
func (h *InsightsHandler) AnalyzePortfolio(w http.ResponseWriter, r *http.Request) {
	advice, err := h.adviceService.AnalyzePortfolio(r.Context(), currentUser(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrAdviceFailed.Error(), nil)
		return
	}
	response.RespondJSON(w, http.StatusOK, advice)
}

// MarketSentiment returns the community anxiety average and reaction mix.
//
// Endpoint: GET /api/market-sentiment
func (h *InsightsHandler) MarketSentiment(w http.ResponseWriter, r *http.Request) {
	sentiment, err := h.sentimentService.GetMarketSentiment(r.Context())
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveSentiment)
		return
	}
	response.RespondJSON(w, http.StatusOK, sentiment)
}

// Goals returns the current user's goals with progress percentages.
//
// Endpoint: GET /api/goals
func (h *InsightsHandler) Goals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.GetGoals(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveGoals)
		return
	}
	response.RespondJSON(w, http.StatusOK, goals)
}

// Achievements returns the current user's unlocked achievements.
//
// Endpoint: GET /api/achievements
func (h *InsightsHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.goalService.GetAchievements(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveAchievements)
		return
	}
	response.RespondJSON(w, http.StatusOK, achievements)
}

// SyncGoals recomputes the current user's goal progress from live data.
//
// Endpoint: POST /api/goals/sync
// Response: 200 OK with GoalSyncResult
func (h *InsightsHandler) SyncGoals(w http.ResponseWriter, r *http.Request) {
	result, err := h.goalService.SyncProgress(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToSyncGoals)
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}

// Digest returns the daily market digest, regenerating it when older than a day.
// Generation failures degrade to the stored or built-in text.
//
// Endpoint: GET /api/digest
// Response: 200 OK with Digest
// Error: 500 Internal Server Error only when the store itself fails
func (h *InsightsHandler) Digest(w http.ResponseWriter, r *http.Request) {
	digest, err := h.digestService.GetDigest(r.Context())
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveDigest)
		return
	}
	response.RespondJSON(w, http.StatusOK, digest)
}
