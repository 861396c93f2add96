package events

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/calendar"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

// GetEvents returns a copy of the list in insertion order.
func (s *Service) GetEvents(_ context.Context) []*model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.events)
}

func (s *Service) GetEventByID(_ context.Context, id string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, model.ErrNoRecord
	}

	return s.events[i].Clone(), nil
}

// GetEventsOn returns the events covering day with their render roles.
func (s *Service) GetEventsOn(ctx context.Context, day civil.Date) []calendar.ActiveEvent {
	return calendar.ActiveEvents(day, s.GetEvents(ctx))
}
