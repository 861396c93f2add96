package model

import (
	"fmt"

	"cloud.google.com/go/civil"
)

type EventCreate struct {
	Title     string
	StartDate civil.Date
	EndDate   civil.Date // inclusive
	Type      EventType
	Color     Color
	StartTime string // "HH:mm", cosmetic only
	EndTime   string
}

type Event struct {
	ID string
	EventCreate
}

// Clone returns a copy that shares nothing with e.
func (e *Event) Clone() *Event {
	c := *e
	return &c
}

type EventType string

const (
	EventTypeTrip     EventType = "Trip"
	EventTypePersonal EventType = "Personal"
	EventTypeFamily   EventType = "Family"
	EventTypeWork     EventType = "Work"
)

var EventTypes = []EventType{EventTypeTrip, EventTypePersonal, EventTypeFamily, EventTypeWork}

func ParseEventType(s string) (EventType, error) {
	for _, t := range EventTypes {
		if string(t) == s {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown event type %q", s)
}

func (t EventType) Valid() bool {
	_, err := ParseEventType(string(t))
	return err == nil
}
