package handlers

import (
	"net/http"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Profile returns a user's public profile as seen by the current user.
//
// Endpoint: GET /api/users/{id}/profile
// Response: 200 OK with UserProfile
// Error: 404 Not Found if the user does not exist
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidID.Error(), err.Error())
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), currentUser(r), targetID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveProfile)
		return
	}
	response.RespondJSON(w, http.StatusOK, profile)
}

// ToggleSubscription follows or unfollows a user.
//
// Endpoint: POST /api/users/{id}/subscribe
// Response: 200 OK with {"success": true, "action": "subscribed"|"unsubscribed"}
func (h *UserHandler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidID.Error(), err.Error())
		return
	}

	result, err := h.userService.ToggleSubscription(r.Context(), currentUser(r), targetID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToToggleSubscription)
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}
