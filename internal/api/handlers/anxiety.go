package handlers

import (
	"net/http"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
	"github.com/ndewijer/VibeInvestor-Backend/internal/validation"
)

// AnxietyHandler handles mood journal HTTP requests.
type AnxietyHandler struct {
	anxietyService *service.AnxietyService
}

func NewAnxietyHandler(anxietyService *service.AnxietyService) *AnxietyHandler {
	return &AnxietyHandler{
		anxietyService: anxietyService,
	}
}

// CreateAnxietyLogResponse is returned after recording a mood entry.
type CreateAnxietyLogResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// Logs returns the most recent anxiety logs newest first.
//
// Endpoint: GET /api/anxiety
func (h *AnxietyHandler) Logs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.anxietyService.GetLogs(r.Context(), currentUser(r))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveAnxietyLogs)
		return
	}
	response.RespondJSON(w, http.StatusOK, logs)
}

// CreateLog records a mood entry.
//
// Endpoint: POST /api/anxiety
// Request Body: request.CreateAnxietyLogRequest
// Response: 201 Created with CreateAnxietyLogResponse
// Error: 400 Bad Request when level is outside 1–10
func (h *AnxietyHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAnxietyLogRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateCreateAnxietyLog(req); err != nil {
		respondValidation(w, err)
		return
	}

	entry, err := h.anxietyService.CreateLog(r.Context(), currentUser(r), req)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCreateAnxietyLog)
		return
	}
	response.RespondJSON(w, http.StatusCreated, CreateAnxietyLogResponse{Success: true, ID: entry.ID})
}

// Calendar returns one month of the emotional calendar.
//
// Endpoint: GET /api/anxiety/calendar?month=YYYY-MM&tz=Area/City
// Both query parameters are optional: month defaults to the current month and
// tz to the configured calendar zone.
// Error: 400 Bad Request for a malformed month or unknown zone
func (h *AnxietyHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	calendar, err := h.anxietyService.GetCalendar(r.Context(), currentUser(r), q.Get("month"), q.Get("tz"))
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToBuildCalendar)
		return
	}
	response.RespondJSON(w, http.StatusOK, calendar)
}
