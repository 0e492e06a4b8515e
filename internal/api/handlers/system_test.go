package handlers_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/handlers"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/testutil"
)

func newSystemHandler(t *testing.T) (*handlers.SystemHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return handlers.NewSystemHandler(testutil.NewTestSystemService(t, db)), db
}

func TestSystemHandler_Health(t *testing.T) {
	tests := []struct {
		name       string
		closeDB    bool
		wantStatus int
		wantHealth string
		wantDB     string
	}{
		{"open database", false, http.StatusOK, "healthy", "connected"},
		{"closed database", true, http.StatusServiceUnavailable, "unhealthy", "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, db := newSystemHandler(t)
			if tt.closeDB {
				db.Close()
			}

			w := httptest.NewRecorder()
			handler.Health(w, httptest.NewRequest(http.MethodGet, "/api/system/health", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			got := testutil.DecodeAs[model.Health](t, w.Body)
			if got.Status != tt.wantHealth || got.Database != tt.wantDB {
				t.Errorf("Unexpected health report: %+v", got)
			}
			if got.AI != "fallback" {
				t.Errorf("Expected fallback advice provider, got %q", got.AI)
			}
			if tt.closeDB == (got.Error == "") {
				t.Errorf("Error field mismatch for closeDB=%v: %q", tt.closeDB, got.Error)
			}
		})
	}
}

func TestSystemHandler_Version(t *testing.T) {
	t.Run("reports schema version and features", func(t *testing.T) {
		handler, _ := newSystemHandler(t)

		w := httptest.NewRecorder()
		handler.Version(w, httptest.NewRequest(http.MethodGet, "/api/system/version", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		info := testutil.DecodeAs[model.VersionInfo](t, w.Body)
		if info.AppVersion == "" {
			t.Error("app_version is empty")
		}
		if info.DbVersion != "2" {
			t.Errorf("Expected db_version 2, got %q", info.DbVersion)
		}
		if _, ok := info.Features["ai_advice"]; !ok {
			t.Errorf("Expected ai_advice flag, got %v", info.Features)
		}
		if info.MigrationNeeded || info.MigrationMessage != nil {
			t.Error("Expected schema to be current")
		}
	})

	t.Run("fails when the schema version is unreadable", func(t *testing.T) {
		handler, db := newSystemHandler(t)
		db.Close()

		w := httptest.NewRecorder()
		handler.Version(w, httptest.NewRequest(http.MethodGet, "/api/system/version", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}
