package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/middleware"
)

func TestValidateIDMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/users/{id}", func(r chi.Router) {
		r.Use(middleware.ValidateIDMiddleware)
		r.Get("/profile", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	tests := []struct {
		path string
		want int
	}{
		{"/users/1/profile", http.StatusOK},
		{"/users/42/profile", http.StatusOK},
		{"/users/abc/profile", http.StatusBadRequest},
		{"/users/0/profile", http.StatusBadRequest},
		{"/users/-1/profile", http.StatusBadRequest},
		{"/users/1.5/profile", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}
