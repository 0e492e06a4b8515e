package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/handlers"
	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/testutil"
)

func TestAnxietyHandler_CreateLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewAnxietyHandler(testutil.NewTestAnxietyService(t, db))
	user := testutil.CreateUser(t, db)

	tests := []struct {
		name       string
		body       request.CreateAnxietyLogRequest
		wantStatus int
	}{
		{"valid entry", request.CreateAnxietyLogRequest{Level: 7, Event: "Rate hike"}, http.StatusCreated},
		{"level too low", request.CreateAnxietyLogRequest{Level: 0}, http.StatusBadRequest},
		{"level too high", request.CreateAnxietyLogRequest{Level: 11}, http.StatusBadRequest},
		{"long cyrillic event", request.CreateAnxietyLogRequest{Level: 6, Event: strings.Repeat("Ключевая ставка выросла. ", 14)}, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/api/anxiety", tt.body), user.ID)
			w := httptest.NewRecorder()

			handler.CreateLog(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				doc := testutil.DecodeJSON(t, w.Body)
				if got := testutil.JSONPath(t, doc, "$.success"); got != true {
					t.Errorf("Expected success true, got %v", got)
				}
			}
		})
	}

	testutil.AssertRowCount(t, db, "anxiety_logs", 1)
}

func TestAnxietyHandler_Logs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewAnxietyHandler(testutil.NewTestAnxietyService(t, db))
	user := testutil.CreateUser(t, db)
	base := time.Now().UTC().Add(-time.Hour)
	testutil.NewAnxietyLog(user.ID).WithEvent("older").At(base).Build(t, db)
	testutil.NewAnxietyLog(user.ID).WithEvent("newer").At(base.Add(time.Minute)).Build(t, db)

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/api/anxiety", nil), user.ID)
	w := httptest.NewRecorder()

	handler.Logs(w, req)

	doc := testutil.DecodeJSON(t, w.Body)
	if got := testutil.JSONPath(t, doc, "$[0].event"); got != "newer" {
		t.Errorf("Expected newest entry first, got %v", got)
	}
}

func TestAnxietyHandler_Calendar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewAnxietyHandler(testutil.NewTestAnxietyService(t, db))
	user := testutil.CreateUser(t, db)
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for _, level := range []int{3, 8, 5} {
		testutil.NewAnxietyLog(user.ID).WithLevel(level).At(day).Build(t, db)
	}

	t.Run("reports the highest level of the day", func(t *testing.T) {
		req := testutil.WithUser(testutil.NewRequestWithQueryParams(http.MethodGet, "/api/anxiety/calendar",
			map[string]string{"month": "2026-03", "tz": "UTC"}), user.ID)
		w := httptest.NewRecorder()

		handler.Calendar(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		doc := testutil.DecodeJSON(t, w.Body)
		if got := len(testutil.JSONPath(t, doc, "$.days").([]any)); got != 31 {
			t.Errorf("Expected 31 days, got %d", got)
		}
		if got := testutil.JSONPath(t, doc, "$.days[9].level"); got != 8.0 {
			t.Errorf("Expected level 8 on March 10, got %v", got)
		}
		if got := testutil.JSONPath(t, doc, "$.days[9].band"); got != "high" {
			t.Errorf("Expected band high, got %v", got)
		}
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		req := testutil.WithUser(testutil.NewRequestWithQueryParams(http.MethodGet, "/api/anxiety/calendar",
			map[string]string{"month": "03-2026"}), user.ID)
		w := httptest.NewRecorder()

		handler.Calendar(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		req := testutil.WithUser(testutil.NewRequestWithQueryParams(http.MethodGet, "/api/anxiety/calendar",
			map[string]string{"tz": "Mars/Olympus"}), user.ID)
		w := httptest.NewRecorder()

		handler.Calendar(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
