package model

// Forecast is the projected value of a monthly savings plan.
type Forecast struct {
	Monthly        float64 `json:"monthly"`
	Rate           float64 `json:"rate"`
	Years          int     `json:"years"`
	Contributed    float64 `json:"contributed"`
	Nominal        float64 `json:"nominal"`
	Adjusted       float64 `json:"adjusted"`
	Profit         float64 `json:"profit"`
	NominalDisplay string  `json:"nominalDisplay"`
}

// Scenario is a named preset savings plan.
type Scenario struct {
	Name     string   `json:"name"`
	Forecast Forecast `json:"forecast"`
}

// ForecastReport is the requested forecast with horizon projections and presets.
type ForecastReport struct {
	Forecast    Forecast   `json:"forecast"`
	Projections []Forecast `json:"projections"`
	Scenarios   []Scenario `json:"scenarios"`
}
