package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/middleware"
	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/apperrors"
	"github.com/ndewijer/VibeInvestor-Backend/internal/validation"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// parseJSON decodes the request body into T, rejecting unknown fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("failed to decode request body: %w", err)
	}
	return v, nil
}

// currentUser returns the acting user resolved by the Identity middleware.
func currentUser(r *http.Request) int64 {
	id, _ := middleware.UserIDFromContext(r.Context())
	return id
}

// pathID parses the {id} URL parameter. Routes are expected to run
// ValidateIDMiddleware first, so an error here is a routing bug.
func pathID(r *http.Request) (int64, error) {
	return validation.ParseID(chi.URLParam(r, "id"))
}

// respondServiceError maps service errors onto HTTP statuses. Anything
// unrecognised is a 500 carrying fallback as the message.
func respondServiceError(w http.ResponseWriter, err error, fallback error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrAssetNotFound):
		response.RespondError(w, http.StatusNotFound, notFoundMessage(err), err.Error())
	case errors.Is(err, apperrors.ErrInvalidMonth),
		errors.Is(err, apperrors.ErrInvalidTimezone):
		response.RespondError(w, http.StatusBadRequest, "invalid request", err.Error())
	case errors.Is(err, apperrors.ErrConstraintViolation):
		response.RespondError(w, http.StatusConflict, apperrors.ErrConstraintViolation.Error(), err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, fallback.Error(), err.Error())
	}
}

func notFoundMessage(err error) string {
	for _, target := range []error{apperrors.ErrUserNotFound, apperrors.ErrPostNotFound, apperrors.ErrAssetNotFound} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "not found"
}

// respondValidation writes a 400 for a validation failure.
func respondValidation(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
		return
	}
	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
}
