package events

import (
	"context"

	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

// UpdateEvent replaces the event with the same id. An unknown id changes
// nothing.
func (s *Service) UpdateEvent(ctx context.Context, event *model.Event) error {
	event = event.Clone()
	normalize(event)

	if err := validateEvent(event); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(event.ID)
	if i < 0 {
		s.logger.Debugw("Update of unknown event ignored", "id", event.ID)
		return nil
	}

	next := cloneAll(s.events)
	next[i] = event
	if err := s.commit(ctx, next); err != nil {
		return err
	}

	s.logger.Debugw("Updated event", "id", event.ID)
	return nil
}
