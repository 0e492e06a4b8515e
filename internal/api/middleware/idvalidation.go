// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/validation"
)

// ValidateIDMiddleware rejects requests whose {id} path segment is not a
// positive integer, before any handler touches the database.
//
//	r.Route("/posts/{id}", func(r chi.Router) {
//	    r.Use(middleware.ValidateIDMiddleware)
//	    r.Post("/comments", feed.CreateComment)
//	})
func ValidateIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "valid ID is required", "")
			return
		}

		if err := validation.ValidateID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
