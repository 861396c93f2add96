package events

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

type eventDTO struct {
	ID        string
	Position  int
	Title     string
	Type      string
	Color     string
	StartDate time.Time
	EndDate   time.Time
	StartTime string
	EndTime   string
}

func mapToEvent(dto *eventDTO) *model.Event {
	return &model.Event{
		ID: dto.ID,
		EventCreate: model.EventCreate{
			Title:     dto.Title,
			StartDate: civil.DateOf(dto.StartDate),
			EndDate:   civil.DateOf(dto.EndDate),
			Type:      model.EventType(dto.Type),
			Color:     model.Color(dto.Color),
			StartTime: dto.StartTime,
			EndTime:   dto.EndTime,
		},
	}
}

func mapToValues(position int, e *model.Event) []interface{} {
	return []interface{}{
		e.ID,
		position,
		e.Title,
		string(e.Type),
		string(e.Color),
		e.StartDate.In(time.UTC),
		e.EndDate.In(time.UTC),
		e.StartTime,
		e.EndTime,
	}
}
