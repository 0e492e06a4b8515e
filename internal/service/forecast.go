package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// InflationRate is the assumed average annual inflation used for the adjusted value.
const InflationRate = 0.08

// ProjectionHorizons are the year counts reported alongside every forecast.
var ProjectionHorizons = []int{1, 3, 5, 10}

// Scenarios are the preset savings plans offered to users.
var Scenarios = []struct {
	Name    string
	Monthly float64
	Years   int
	Rate    float64
}{
	{"Старт (1000₽)", 1000, 5, 12},
	{"Комфорт (5000₽)", 5000, 10, 15},
	{"Свобода (20000₽)", 20000, 15, 18},
}

// ForecastBalance runs the monthly recurrence
//
//	balance = (balance + monthly) × (1 + rate/100/12)
//
// years×12 times starting from zero.
func ForecastBalance(monthly, ratePercent float64, years int) float64 {
	balance := 0.0
	monthlyRate := ratePercent / 100 / 12
	for i := 0; i < years*12; i++ {
		balance = (balance + monthly) * (1 + monthlyRate)
	}
	return balance
}

// ComputeForecast projects a monthly savings plan and discounts it by InflationRate.
func ComputeForecast(monthly, ratePercent float64, years int) model.Forecast {
	nominal := ForecastBalance(monthly, ratePercent, years)
	adjusted := nominal / math.Pow(1+InflationRate, float64(years))
	contributed := monthly * float64(years*12)

	return model.Forecast{
		Monthly:        monthly,
		Rate:           ratePercent,
		Years:          years,
		Contributed:    round(contributed),
		Nominal:        round(nominal),
		Adjusted:       round(adjusted),
		Profit:         round(nominal - contributed),
		NominalDisplay: rubles(decimal.NewFromFloat(nominal)),
	}
}

// BuildForecastReport returns the requested forecast, the standard horizon
// projections for the same plan and the preset scenarios.
func BuildForecastReport(monthly, ratePercent float64, years int) (model.ForecastReport, error) {
	if monthly < 0 {
		return model.ForecastReport{}, fmt.Errorf("monthly contribution must not be negative")
	}
	if years < 1 || years > 50 {
		return model.ForecastReport{}, fmt.Errorf("years must be between 1 and 50")
	}
	if ratePercent <= -100 || ratePercent > 100 {
		return model.ForecastReport{}, fmt.Errorf("rate must be above -100 and at most 100")
	}

	report := model.ForecastReport{
		Forecast:    ComputeForecast(monthly, ratePercent, years),
		Projections: make([]model.Forecast, 0, len(ProjectionHorizons)),
		Scenarios:   make([]model.Scenario, 0, len(Scenarios)),
	}
	for _, y := range ProjectionHorizons {
		report.Projections = append(report.Projections, ComputeForecast(monthly, ratePercent, y))
	}
	for _, sc := range Scenarios {
		report.Scenarios = append(report.Scenarios, model.Scenario{
			Name:     sc.Name,
			Forecast: ComputeForecast(sc.Monthly, sc.Rate, sc.Years),
		})
	}
	return report, nil
}
