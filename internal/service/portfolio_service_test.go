package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/request"
	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
	"github.com/ndewijer/VibeInvestor-Backend/internal/testutil"
)

// TestTotalValue tests portfolio valuation.
//
// WHY: Every dashboard number derives from quantity × avg_price. A holding
// with zero quantity must never move the total.
func TestTotalValue(t *testing.T) {
	assets := []model.Asset{
		{Symbol: "GAZP", Quantity: 100, AvgPrice: 124.5, Sector: "Энергетика"},
		{Symbol: "SBER", Quantity: 50, AvgPrice: 245.2, Sector: "Финансы"},
		{Symbol: "TMOS", Quantity: 1000, AvgPrice: 5.8, Sector: "Индексы"},
	}

	t.Run("sums quantity times average price", func(t *testing.T) {
		got := service.TotalValue(assets)
		want := 100*124.5 + 50*245.2 + 1000*5.8
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Expected total %v, got %v", want, got)
		}
	})

	t.Run("zero-quantity asset does not change total", func(t *testing.T) {
		before := service.TotalValue(assets)
		withEmpty := append(append([]model.Asset{}, assets...), model.Asset{Symbol: "YNDX", Quantity: 0, AvgPrice: 3000})
		if after := service.TotalValue(withEmpty); after != before {
			t.Errorf("Expected total %v, got %v", before, after)
		}
	})

	t.Run("empty portfolio is zero", func(t *testing.T) {
		if got := service.TotalValue(nil); got != 0 {
			t.Errorf("Expected 0, got %v", got)
		}
	})
}

// TestSummarize tests the sector breakdown.
func TestSummarize(t *testing.T) {
	t.Run("percentages sum to 100", func(t *testing.T) {
		summary := service.Summarize([]model.Asset{
			{Quantity: 3, AvgPrice: 33.33, Sector: "A"},
			{Quantity: 7, AvgPrice: 11.11, Sector: "B"},
			{Quantity: 1, AvgPrice: 1, Sector: "C"},
			{Quantity: 2, AvgPrice: 19, Sector: "A"},
		})

		sum := 0.0
		for _, s := range summary.Sectors {
			sum += s.Percentage
		}
		if math.Abs(sum-100) > 0.05 {
			t.Errorf("Expected percentages to sum to 100, got %v", sum)
		}
		if len(summary.Sectors) != 3 {
			t.Errorf("Expected 3 sectors, got %d", len(summary.Sectors))
		}
	})

	t.Run("orders sectors by value descending", func(t *testing.T) {
		summary := service.Summarize([]model.Asset{
			{Quantity: 1, AvgPrice: 10, Sector: "Small"},
			{Quantity: 1, AvgPrice: 90, Sector: "Big"},
		})
		if summary.Sectors[0].Sector != "Big" {
			t.Errorf("Expected Big first, got %s", summary.Sectors[0].Sector)
		}
		if summary.Sectors[0].Percentage != 90 {
			t.Errorf("Expected 90%%, got %v", summary.Sectors[0].Percentage)
		}
	})

	t.Run("zero total yields zero percentages", func(t *testing.T) {
		summary := service.Summarize([]model.Asset{{Quantity: 0, AvgPrice: 10, Sector: "Empty"}})
		if summary.TotalValue != 0 {
			t.Errorf("Expected zero total, got %v", summary.TotalValue)
		}
		for _, s := range summary.Sectors {
			if s.Percentage != 0 {
				t.Errorf("Expected 0%% for %s, got %v", s.Sector, s.Percentage)
			}
		}
	})
}

// TestPortfolioService_GetAssets tests that holdings are scoped per user.
func TestPortfolioService_GetAssets(t *testing.T) {
	t.Run("returns empty slice when user holds nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		user := testutil.CreateUser(t, db)

		assets, err := svc.GetAssets(context.Background(), user.ID)
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}
		if assets == nil || len(assets) != 0 {
			t.Errorf("Expected empty non-nil slice, got %v", assets)
		}
	})

	t.Run("returns only the user's assets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		alice := testutil.CreateUser(t, db)
		bob := testutil.CreateUser(t, db)

		mine := testutil.NewAsset(alice.ID).WithSymbol("SBER").Build(t, db)
		testutil.NewAsset(bob.ID).WithSymbol("GAZP").Build(t, db)

		assets, err := svc.GetAssets(context.Background(), alice.ID)
		if err != nil {
			t.Fatalf("GetAssets() returned unexpected error: %v", err)
		}
		if len(assets) != 1 || assets[0].ID != mine.ID {
			t.Errorf("Expected only asset %d, got %+v", mine.ID, assets)
		}
	})
}

func TestPortfolioService_CreateAsset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)
	user := testutil.CreateUser(t, db)

	asset, err := svc.CreateAsset(context.Background(), user.ID, request.CreateAssetRequest{
		Type:     model.AssetTypeBond,
		Symbol:   "SU26238",
		Name:     "ОФЗ 26238",
		Quantity: 10,
		AvgPrice: 650,
		Sector:   "Облигации",
	})
	if err != nil {
		t.Fatalf("CreateAsset() returned unexpected error: %v", err)
	}
	if asset.ID == 0 {
		t.Error("Expected asset ID to be set")
	}

	summary, err := svc.GetPortfolioSummary(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
	}
	if summary.TotalValue != 6500 {
		t.Errorf("Expected total 6500, got %v", summary.TotalValue)
	}
	if summary.AssetCount != 1 {
		t.Errorf("Expected 1 asset, got %d", summary.AssetCount)
	}
}
