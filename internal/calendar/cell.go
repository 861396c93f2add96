package calendar

import (
	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

// HolidayLookup finds the holiday on a date, if any.
type HolidayLookup interface {
	Lookup(date civil.Date) (*model.Holiday, bool)
}

type Tint string

const (
	TintDefault     Tint = "default"
	TintWeekend     Tint = "weekend"
	TintHoliday     Tint = "holiday"
	TintCutiBersama Tint = "cuti-bersama"
	TintToday       Tint = "today"
)

type Marker string

const (
	MarkerNone  Marker = ""
	MarkerPulse Marker = "pulse"
	MarkerSoft  Marker = "soft"
)

type Cell struct {
	model.DayData
	Weekend bool
	Today   bool
	Holiday *model.Holiday
	Events  []ActiveEvent

	Background    Tint
	LabelTint     Tint
	NumberTint    Tint
	HolidayMarker Marker
}

// Annotate merges holiday, weekend and today state with the events active on day.
func Annotate(day model.DayData, events []*model.Event, holidays HolidayLookup, today civil.Date) Cell {
	c := Cell{
		DayData: day,
		Weekend: IsWeekend(day.Date),
		Today:   day.Date == today,
		Events:  ActiveEvents(day.Date, events),
	}

	if holidays != nil {
		if h, ok := holidays.Lookup(day.Date); ok {
			c.Holiday = h
		}
	}

	c.Background = backgroundTint(c.Holiday, c.Weekend)
	c.LabelTint = labelTint(c.Holiday, c.Weekend)
	c.NumberTint = numberTint(c.Holiday, c.Today)
	c.HolidayMarker = holidayMarker(c.Holiday, c.Today)

	return c
}

func backgroundTint(h *model.Holiday, weekend bool) Tint {
	switch {
	case h != nil && h.CutiBersama:
		return TintCutiBersama
	case h != nil:
		return TintHoliday
	case weekend:
		return TintWeekend
	default:
		return TintDefault
	}
}

func labelTint(h *model.Holiday, weekend bool) Tint {
	switch {
	case h != nil:
		return TintHoliday
	case weekend:
		return TintWeekend
	default:
		return TintDefault
	}
}

func numberTint(h *model.Holiday, today bool) Tint {
	switch {
	case today:
		return TintToday
	case h != nil:
		return TintHoliday
	default:
		return TintDefault
	}
}

func holidayMarker(h *model.Holiday, today bool) Marker {
	switch {
	case h == nil || today:
		return MarkerNone
	case h.CutiBersama:
		return MarkerSoft
	default:
		return MarkerPulse
	}
}
