package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/service"
)

// Forecast defaults when a query parameter is omitted.
const (
	DefaultForecastMonthly = 1000
	DefaultForecastRate    = 12
	DefaultForecastYears   = 5
)

// Forecast projects a monthly savings plan.
//
// Endpoint: GET /api/forecast?monthly=1000&rate=12&years=5
// Response: 200 OK with ForecastReport
// Error: 400 Bad Request for non-numeric or out-of-range parameters
func Forecast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	monthly, err := floatParam(q.Get("monthly"), DefaultForecastMonthly)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid monthly", err.Error())
		return
	}
	rate, err := floatParam(q.Get("rate"), DefaultForecastRate)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid rate", err.Error())
		return
	}
	years := DefaultForecastYears
	if raw := q.Get("years"); raw != "" {
		if years, err = strconv.Atoi(raw); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid years", fmt.Sprintf("%q is not an integer", raw))
			return
		}
	}

	report, err := service.BuildForecastReport(monthly, rate, years)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid forecast parameters", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, report)
}

func floatParam(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return v, nil
}
