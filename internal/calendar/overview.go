package calendar

import (
	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

type DayAction string

const (
	// DayActionCreate opens the event form prefilled with the day.
	DayActionCreate DayAction = "create"
	// DayActionOverview lists the day's events for edit or delete.
	DayActionOverview DayAction = "overview"
)

type DayOverview struct {
	Date    civil.Date
	Holiday *model.Holiday
	Events  []*model.Event
	Action  DayAction
}

func Overview(date civil.Date, events []*model.Event, holidays HolidayLookup) *DayOverview {
	o := &DayOverview{
		Date:   date,
		Action: DayActionCreate,
	}

	for _, e := range events {
		if Contains(e, date) {
			o.Events = append(o.Events, e)
		}
	}
	if len(o.Events) > 0 {
		o.Action = DayActionOverview
	}

	if holidays != nil {
		if h, ok := holidays.Lookup(date); ok {
			o.Holiday = h
		}
	}

	return o
}
