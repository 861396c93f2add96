package events

import (
	"context"

	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	event := &model.Event{EventCreate: *info}
	normalize(event)

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.newID()
	next := append(cloneAll(s.events), event.Clone())
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Debugw("Created event", "id", event.ID, "type", event.Type)
	return event, nil
}
