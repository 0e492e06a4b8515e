package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/handlers"
	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/testutil"
)

func TestPortfolioHandler_Assets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db))

	owner := testutil.CreateUser(t, db)
	other := testutil.CreateUser(t, db)
	testutil.NewAsset(owner.ID).WithSymbol("SBER").Build(t, db)
	testutil.NewAsset(other.ID).WithSymbol("YNDX").Build(t, db)

	t.Run("returns only the current user's assets", func(t *testing.T) {
		req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/api/portfolio", nil), owner.ID)
		w := httptest.NewRecorder()

		handler.Assets(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		doc := testutil.DecodeJSON(t, w.Body)
		if got := len(doc.([]any)); got != 1 {
			t.Fatalf("Expected 1 asset, got %d", got)
		}
		if got := testutil.JSONPath(t, doc, "$[0].symbol"); got != "SBER" {
			t.Errorf("Expected symbol SBER, got %v", got)
		}
	})

	t.Run("returns empty array for user without assets", func(t *testing.T) {
		empty := testutil.CreateUser(t, db)
		req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/api/portfolio", nil), empty.ID)
		w := httptest.NewRecorder()

		handler.Assets(w, req)

		if body := w.Body.String(); body != "[]\n" {
			t.Errorf("Expected empty JSON array, got %q", body)
		}
	})
}

func TestPortfolioHandler_CreateAsset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db))
	user := testutil.CreateUser(t, db)

	t.Run("creates asset and returns id", func(t *testing.T) {
		req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/api/portfolio/asset", request.CreateAssetRequest{
			Type: "stock", Symbol: "LKOH", Name: "Лукойл", Quantity: 2, AvgPrice: 7000, Sector: "Энергетика",
		}), user.ID)
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		doc := testutil.DecodeJSON(t, w.Body)
		if id, ok := testutil.JSONPath(t, doc, "$.id").(float64); !ok || id <= 0 {
			t.Errorf("Expected positive id, got %v", id)
		}
		testutil.AssertRowCount(t, db, "portfolio_assets", 1)
	})

	t.Run("rejects unknown asset type", func(t *testing.T) {
		req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/api/portfolio/asset", request.CreateAssetRequest{
			Type: "option", Symbol: "X",
		}), user.ID)
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/api/portfolio/asset", "not an object"), user.ID)
		w := httptest.NewRecorder()

		handler.CreateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestPortfolioHandler_Summary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db))
	user := testutil.CreateUser(t, db)
	testutil.NewAsset(user.ID).WithPosition(10, 100).WithSector("Финансы").Build(t, db)
	testutil.NewAsset(user.ID).WithPosition(3, 100).WithSector("IT").Build(t, db)
	testutil.NewAsset(user.ID).WithPosition(0, 500).WithSector("IT").Build(t, db)

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/api/portfolio/summary", nil), user.ID)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	doc := testutil.DecodeJSON(t, w.Body)
	if got := testutil.JSONPath(t, doc, "$.totalValue"); got != 1300.0 {
		t.Errorf("Expected totalValue 1300, got %v", got)
	}
	if got := testutil.JSONPath(t, doc, "$.assetCount"); got != 3.0 {
		t.Errorf("Expected assetCount 3, got %v", got)
	}
}
