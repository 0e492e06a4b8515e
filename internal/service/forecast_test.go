package service_test

import (
	"math"
	"testing"

	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

// TestForecastBalance tests the monthly compounding recurrence.
//
// WHY: The order of operations is fixed (contribute, then grow). Changing it
// to grow-then-contribute silently shifts every projection.
func TestForecastBalance(t *testing.T) {
	t.Run("matches twelve explicit steps", func(t *testing.T) {
		want := 0.0
		for i := 0; i < 12; i++ {
			want = (want + 1000) * (1 + 0.12/12)
		}
		if got := service.ForecastBalance(1000, 12, 1); got != want {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("zero rate returns contributions", func(t *testing.T) {
		if got := service.ForecastBalance(500, 0, 2); got != 12000 {
			t.Errorf("Expected 12000, got %v", got)
		}
	})
}

func TestComputeForecast(t *testing.T) {
	f := service.ComputeForecast(1000, 12, 1)

	if f.Nominal != 12809.33 {
		t.Errorf("Expected nominal 12809.33, got %v", f.Nominal)
	}
	if f.Adjusted != 11860.49 {
		t.Errorf("Expected adjusted 11860.49, got %v", f.Adjusted)
	}
	if math.Abs(f.Adjusted-f.Nominal/1.08) > 0.01 {
		t.Errorf("Expected adjusted to be nominal / 1.08, got %v", f.Adjusted)
	}
	if f.Contributed != 12000 {
		t.Errorf("Expected contributed 12000, got %v", f.Contributed)
	}
	if f.Profit != 809.33 {
		t.Errorf("Expected profit 809.33, got %v", f.Profit)
	}
	if f.NominalDisplay == "" {
		t.Error("Expected a display string")
	}
}

func TestBuildForecastReport(t *testing.T) {
	t.Run("includes horizons and scenarios", func(t *testing.T) {
		report, err := service.BuildForecastReport(1000, 12, 5)
		if err != nil {
			t.Fatalf("BuildForecastReport() returned unexpected error: %v", err)
		}
		if len(report.Projections) != len(service.ProjectionHorizons) {
			t.Errorf("Expected %d projections, got %d", len(service.ProjectionHorizons), len(report.Projections))
		}
		for i, p := range report.Projections {
			if p.Years != service.ProjectionHorizons[i] {
				t.Errorf("Projection %d: expected %d years, got %d", i, service.ProjectionHorizons[i], p.Years)
			}
		}
		if len(report.Scenarios) != 3 {
			t.Fatalf("Expected 3 scenarios, got %d", len(report.Scenarios))
		}
		if report.Scenarios[0].Forecast.Nominal != 82486.37 {
			t.Errorf("Expected first scenario nominal 82486.37, got %v", report.Scenarios[0].Forecast.Nominal)
		}
		if report.Forecast.Nominal != report.Scenarios[0].Forecast.Nominal {
			t.Error("Expected the requested plan to equal the matching scenario")
		}
	})

	tests := []struct {
		name    string
		monthly float64
		rate    float64
		years   int
	}{
		{"negative contribution", -1, 12, 1},
		{"zero years", 1000, 12, 0},
		{"too many years", 1000, 12, 51},
		{"rate at -100", 1000, -100, 1},
		{"rate above 100", 1000, 101, 1},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			if _, err := service.BuildForecastReport(tt.monthly, tt.rate, tt.years); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
