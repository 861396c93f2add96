package calendar

import (
	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

type RenderKind string

const (
	// RenderBadge is a single-day marker centred above the cell.
	RenderBadge RenderKind = "badge"
	// RenderRibbon is one segment of a bar spanning the event's days.
	RenderRibbon RenderKind = "ribbon"
)

type Render struct {
	Kind         RenderKind
	RoundedLeft  bool
	RoundedRight bool
	ShowTitle    bool
}

type ActiveEvent struct {
	Event   *model.Event
	IsStart bool
	IsEnd   bool
	Render  Render
}

// Contains reports whether day lies within the event's inclusive date range.
// Time-of-day fields are ignored.
func Contains(e *model.Event, day civil.Date) bool {
	return !day.Before(e.StartDate) && !day.After(e.EndDate)
}

// ActiveEvents returns the events covering day, keeping the order of events.
func ActiveEvents(day civil.Date, events []*model.Event) []ActiveEvent {
	var res []ActiveEvent
	for _, e := range events {
		if !Contains(e, day) {
			continue
		}

		isStart := day == e.StartDate
		isEnd := day == e.EndDate
		res = append(res, ActiveEvent{
			Event:   e,
			IsStart: isStart,
			IsEnd:   isEnd,
			Render:  RenderFor(e.Type, isStart, isEnd),
		})
	}

	return res
}

// RenderFor decides how one day of an event is drawn. Personal events get a
// badge on their first day; everything else is a ribbon rounded only at the
// true start and end of the span.
func RenderFor(t model.EventType, isStart, isEnd bool) Render {
	if t == model.EventTypePersonal && isStart {
		return Render{Kind: RenderBadge, ShowTitle: true}
	}

	return Render{
		Kind:         RenderRibbon,
		RoundedLeft:  isStart,
		RoundedRight: isEnd,
		ShowTitle:    isStart,
	}
}
