package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/handlers"
	"github.com/ndewijer/VibeInvestor-Backend/internal/testutil"
)

func TestForecast(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		handlers.Forecast(w, httptest.NewRequest(http.MethodGet, "/api/forecast", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		doc := testutil.DecodeJSON(t, w.Body)
		if got := testutil.JSONPath(t, doc, "$.forecast.nominal"); got != 82486.37 {
			t.Errorf("Expected nominal 82486.37 for 1000/12%%/5y, got %v", got)
		}
		if got := len(testutil.JSONPath(t, doc, "$.scenarios").([]any)); got != 3 {
			t.Errorf("Expected 3 scenarios, got %d", got)
		}
	})

	t.Run("one year plan", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/forecast",
			map[string]string{"monthly": "1000", "rate": "12", "years": "1"})
		w := httptest.NewRecorder()

		handlers.Forecast(w, req)

		doc := testutil.DecodeJSON(t, w.Body)
		if got := testutil.JSONPath(t, doc, "$.forecast.nominal"); got != 12809.33 {
			t.Errorf("Expected nominal 12809.33, got %v", got)
		}
		if got := testutil.JSONPath(t, doc, "$.forecast.profit"); got != 809.33 {
			t.Errorf("Expected profit 809.33, got %v", got)
		}
	})

	for _, q := range []map[string]string{
		{"monthly": "lots"},
		{"years": "1.5"},
		{"years": "0"},
		{"rate": "-150"},
	} {
		t.Run("rejects invalid query", func(t *testing.T) {
			w := httptest.NewRecorder()
			handlers.Forecast(w, testutil.NewRequestWithQueryParams(http.MethodGet, "/api/forecast", q))

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400 for %v, got %d", q, w.Code)
			}
		})
	}
}
