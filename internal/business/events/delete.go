package events

import (
	"context"

	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

// DeleteEvent removes the event with the given id. An unknown id changes
// nothing.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debugw("Delete of unknown event ignored", "id", id)
		return nil
	}

	next := make([]*model.Event, 0, len(s.events)-1)
	next = append(next, cloneAll(s.events[:i])...)
	next = append(next, cloneAll(s.events[i+1:])...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}

	s.logger.Debugw("Deleted event", "id", id)
	return nil
}
