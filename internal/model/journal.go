package model

import "time"

// AnxietyLog is a free-form mood entry. Level is 1–10 by convention.
type AnxietyLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Level     int       `json:"level"`
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

// Calendar bands derived from the highest anxiety level of a day.
const (
	BandNone     = "none"
	BandCalm     = "calm"
	BandElevated = "elevated"
	BandHigh     = "high"
)

// CalendarDay is one day of the emotional calendar.
type CalendarDay struct {
	Date   string       `json:"date"`
	Level  int          `json:"level"`
	Band   string       `json:"band"`
	Logs   []AnxietyLog `json:"logs"`
	Trades []Trade      `json:"trades"`
}

// Calendar is a month of CalendarDays in the viewer's time zone.
type Calendar struct {
	Month    string        `json:"month"`
	Timezone string        `json:"timezone"`
	Days     []CalendarDay `json:"days"`
}
