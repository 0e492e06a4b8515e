package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/middleware"
)

func TestRequestID(t *testing.T) {
	var fromCtx string
	handler := middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		fromCtx = middleware.RequestIDFromContext(r.Context())
	}))

	t.Run("generates id when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		got := w.Header().Get(middleware.RequestIDHeader)
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("Expected UUID request id, got %q", got)
		}
		if fromCtx != got {
			t.Errorf("Expected context id %q to match header %q", fromCtx, got)
		}
	})

	t.Run("keeps valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, incoming)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.RequestIDHeader); got != incoming {
			t.Errorf("Expected %q, got %q", incoming, got)
		}
	})

	t.Run("replaces malformed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.RequestIDHeader); got == "<script>" {
			t.Error("Expected malformed id to be replaced")
		}
	})
}
