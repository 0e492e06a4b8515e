package handlers

import (
	"net/http"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

// SystemHandler serves the unauthenticated system endpoints.
type SystemHandler struct {
	system *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(system *service.SystemService) *SystemHandler {
	return &SystemHandler{system: system}
}

// Health reports database connectivity and the active advice provider.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with model.Health, 503 Service Unavailable when the database does not answer
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	health := h.system.CheckHealth(r.Context())
	status := http.StatusOK
	if !health.Healthy() {
		status = http.StatusServiceUnavailable
	}
	response.RespondJSON(w, status, health)
}

// Version reports the build version, schema version and feature flags.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with model.VersionInfo
// Error: 500 Internal Server Error when the schema version cannot be read
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	info, err := h.system.CheckVersion(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetVersionInfo.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, info)
}
