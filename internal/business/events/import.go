package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

// ImportEvents replaces the whole list with the events in data. Nothing
// changes unless every event is readable and valid. Events without an id
// get a fresh one; repeated ids are rejected.
func (s *Service) ImportEvents(ctx context.Context, data []byte) (int, error) {
	events, err := s.codec.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("codec.Decode: %w", err)
	}

	fields := make(map[string]string)
	seen := make(map[string]int, len(events))
	var cause error

	for i, e := range events {
		normalize(e)

		if err := validateEvent(e); err != nil {
			verr := err.(*model.ValidationError)
			for k, msg := range verr.Fields {
				fields[fmt.Sprintf("%d.%s", i, k)] = msg
			}
			if cause == nil {
				cause = verr.Cause
			}
		}

		if e.ID == "" {
			continue
		}
		if first, ok := seen[e.ID]; ok {
			fields[fmt.Sprintf("%d.id", i)] = fmt.Sprintf("duplicates the id of event %d", first)
			continue
		}
		seen[e.ID] = i
	}

	if len(fields) != 0 {
		return 0, &model.ValidationError{Fields: fields, Cause: cause}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range events {
		if e.ID == "" {
			e.ID = s.newID()
		}
	}

	if err := s.commit(ctx, events); err != nil {
		return 0, err
	}

	s.logger.Infow("Imported events", "count", len(events))
	return len(events), nil
}
