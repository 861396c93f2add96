// Package interchange reads and writes the JSON array format used for
// persisted and exported events.
package interchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

const dateLayout = "2006-01-02"

type eventDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Type      string `json:"type"`
	Color     string `json:"color"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// Codec converts between events and their JSON form. Dates are written as
// midnight in loc and read back as the wall-clock date in loc.
type Codec struct {
	loc *time.Location
}

func NewCodec(loc *time.Location) *Codec {
	if loc == nil {
		loc = time.Local
	}
	return &Codec{loc: loc}
}

// Encode writes events as a pretty-printed JSON array.
func (c *Codec) Encode(events []*model.Event) ([]byte, error) {
	dtos := make([]*eventDTO, len(events))
	for i, e := range events {
		dtos[i] = &eventDTO{
			ID:        e.ID,
			Title:     e.Title,
			StartDate: c.formatDate(e.StartDate),
			EndDate:   c.formatDate(e.EndDate),
			Type:      string(e.Type),
			Color:     string(e.Color),
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		}
	}

	data, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Decode reads a JSON array of events. Any other top-level shape, or any
// unreadable element, yields an error wrapping model.ErrMalformedImport.
func (c *Codec) Decode(data []byte) ([]*model.Event, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: body must not be empty", model.ErrMalformedImport)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			return nil, fmt.Errorf("%w: error parsing JSON (at character %d)", model.ErrMalformedImport, syntaxError.Offset)
		case errors.As(err, &unmarshalTypeError):
			return nil, fmt.Errorf("%w: expected a JSON array of events", model.ErrMalformedImport)
		default:
			return nil, fmt.Errorf("%w: %v", model.ErrMalformedImport, err)
		}
	}
	if raw == nil {
		// top-level null decodes into a nil slice without error
		return nil, fmt.Errorf("%w: expected a JSON array of events", model.ErrMalformedImport)
	}

	events := make([]*model.Event, len(raw))
	for i, r := range raw {
		e, err := c.decodeEvent(r)
		if err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", model.ErrMalformedImport, i, err)
		}
		events[i] = e
	}

	return events, nil
}

func (c *Codec) decodeEvent(data json.RawMessage) (*model.Event, error) {
	dto := &eventDTO{}
	if err := json.Unmarshal(data, dto); err != nil {
		return nil, errors.New("expected an event object")
	}

	start, err := c.parseDate(dto.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	end, err := c.parseDate(dto.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	typ, err := model.ParseEventType(dto.Type)
	if err != nil {
		return nil, err
	}

	color, err := model.ParseColor(dto.Color)
	if err != nil {
		color = model.DefaultColor(typ)
	}

	return &model.Event{
		ID: dto.ID,
		EventCreate: model.EventCreate{
			Title:     dto.Title,
			StartDate: start,
			EndDate:   end,
			Type:      typ,
			Color:     color,
			StartTime: dto.StartTime,
			EndTime:   dto.EndTime,
		},
	}, nil
}

func (c *Codec) formatDate(d civil.Date) string {
	return d.In(c.loc).Format(time.RFC3339)
}

func (c *Codec) parseDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return civil.Date{}, errors.New("must be provided")
	}

	if len(s) == len(dateLayout) {
		d, err := civil.ParseDate(s)
		if err != nil {
			return civil.Date{}, fmt.Errorf("invalid date %q", s)
		}
		return d, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date-time %q", s)
	}

	return civil.DateOf(t.In(c.loc)), nil
}
