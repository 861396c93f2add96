package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SergeyKozhin/yearly-calendar/internal/interchange"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns the event list. Readers get copies; every mutation is
// persisted as a whole list before it becomes visible.
type Service struct {
	logger *zap.SugaredLogger
	store  store
	codec  *interchange.Codec
	loc    *time.Location
	newID  func() string

	mu     sync.RWMutex
	events []*model.Event
}

type store interface {
	Load(ctx context.Context) ([]*model.Event, error)
	Save(ctx context.Context, events []*model.Event) error
}

func NewService(logger *zap.SugaredLogger, store store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		logger: logger,
		store:  store,
		codec:  interchange.NewCodec(loc),
		loc:    loc,
		newID:  uuid.NewString,
	}
}

// Load reads the persisted list. Unreadable data is logged and replaced by
// an empty list; an unreachable store is an error.
func (s *Service) Load(ctx context.Context) error {
	events, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, model.ErrMalformedImport):
		s.logger.Warnw("Persisted events are unreadable, starting empty", "err", err)
		events = nil
	case err != nil:
		return fmt.Errorf("store.Load: %w", err)
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()

	s.logger.Infow("Loaded events", "count", len(events))
	return nil
}

// commit persists next and swaps it in. Callers hold s.mu.
func (s *Service) commit(ctx context.Context, next []*model.Event) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}

	s.events = next
	return nil
}

func (s *Service) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(events []*model.Event) []*model.Event {
	res := make([]*model.Event, len(events))
	for i, e := range events {
		res[i] = e.Clone()
	}
	return res
}
