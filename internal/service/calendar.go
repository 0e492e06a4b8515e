package service

import (
	"time"

	"github.com/ndewijer/VibeInvestor-Backend/internal/model"
)

// dateLayout is the calendar day key.
const dateLayout = "2006-01-02"

// Band maps a day's highest anxiety level to its calendar band.
func Band(level int) string {
	switch {
	case level >= 7:
		return model.BandHigh
	case level >= 4:
		return model.BandElevated
	case level > 0:
		return model.BandCalm
	default:
		return model.BandNone
	}
}

// BuildCalendar buckets logs and trades by calendar date in loc and returns
// every day of the month that starts at monthStart. A day's level is the
// maximum level of its logs, floored at 0.
func BuildCalendar(monthStart time.Time, loc *time.Location, logs []model.AnxietyLog, trades []model.Trade) model.Calendar {
	first := time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	index := make(map[string]int)
	days := []model.CalendarDay{}
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		index[key] = len(days)
		days = append(days, model.CalendarDay{
			Date:   key,
			Band:   model.BandNone,
			Logs:   []model.AnxietyLog{},
			Trades: []model.Trade{},
		})
	}

	for _, l := range logs {
		i, ok := index[l.CreatedAt.In(loc).Format(dateLayout)]
		if !ok {
			continue
		}
		days[i].Logs = append(days[i].Logs, l)
		days[i].Level = max(days[i].Level, l.Level)
	}
	for _, t := range trades {
		i, ok := index[t.CreatedAt.In(loc).Format(dateLayout)]
		if !ok {
			continue
		}
		days[i].Trades = append(days[i].Trades, t)
	}
	for i := range days {
		days[i].Band = Band(days[i].Level)
	}

	return model.Calendar{
		Month:    first.Format("2006-01"),
		Timezone: loc.String(),
		Days:     days,
	}
}
