package events

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"github.com/SergeyKozhin/yearly-calendar/internal/pkg/validator"
)

func init() {
	validator.RegisterString("eventtype", "must be one of: Trip, Personal, Family, Work", func(s string) bool {
		return model.EventType(s).Valid()
	})
	validator.RegisterString("palette", "must be a palette colour", func(s string) bool {
		return model.Color(s).Valid()
	})
}

type eventFields struct {
	Title     string `json:"title" validate:"notblank,max=200"`
	Type      string `json:"type" validate:"eventtype"`
	Color     string `json:"color" validate:"palette"`
	StartTime string `json:"startTime" validate:"omitempty,hhmm"`
	EndTime   string `json:"endTime" validate:"omitempty,hhmm"`
}

// normalize trims the title, maps legacy colour classes onto the palette and
// fills in the category colour when none is set.
func normalize(e *model.Event) {
	e.Title = strings.TrimSpace(e.Title)

	if e.Color == "" {
		e.Color = model.DefaultColor(e.Type)
		return
	}
	if c, err := model.ParseColor(string(e.Color)); err == nil {
		e.Color = c
	}
}

func validateEvent(e *model.Event) error {
	v := validator.New()

	v.Struct(eventFields{
		Title:     e.Title,
		Type:      string(e.Type),
		Color:     string(e.Color),
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
	})
	v.Check(!isZero(e.StartDate), "startDate", "must be provided")
	v.Check(!isZero(e.EndDate), "endDate", "must be provided")

	var cause error
	if !isZero(e.StartDate) && !isZero(e.EndDate) && e.EndDate.Before(e.StartDate) {
		v.AddError("endDate", "must not be before startDate")
		cause = model.ErrInvalidInterval
	}

	if !v.Valid() {
		return &model.ValidationError{Fields: v.Errors, Cause: cause}
	}

	return nil
}

func isZero(d civil.Date) bool {
	return d == civil.Date{}
}
