package storage

import (
	"context"
	"sync"

	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

// MemoryStore keeps the list for the lifetime of the process.
type MemoryStore struct {
	mu     sync.Mutex
	events []*model.Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.events), nil
}

func (s *MemoryStore) Save(_ context.Context, events []*model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = clone(events)
	return nil
}

func clone(events []*model.Event) []*model.Event {
	if events == nil {
		return nil
	}

	res := make([]*model.Event, len(events))
	for i, e := range events {
		res[i] = e.Clone()
	}
	return res
}
