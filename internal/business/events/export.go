package events

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	ical "github.com/arran4/golang-ical"
)

const (
	exportFilenameLayout = "calendar_events_20060102_1504"
	icsProductID         = "-//Yearly Calendar//Events//EN"
)

// ExportFilename is the download name for a JSON export taken at now.
func (s *Service) ExportFilename(now time.Time) string {
	return now.In(s.loc).Format(exportFilenameLayout) + ".json"
}

// ExportEvents encodes the current list in the interchange format and
// returns it with its download name.
func (s *Service) ExportEvents(ctx context.Context, now time.Time) (string, []byte, error) {
	data, err := s.codec.Encode(s.GetEvents(ctx))
	if err != nil {
		return "", nil, fmt.Errorf("codec.Encode: %w", err)
	}

	return s.ExportFilename(now), data, nil
}

// ExportICS renders the list as all-day iCalendar events.
func (s *Service) ExportICS(ctx context.Context, now time.Time) (string, []byte) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("Yearly Calendar")
	cal.SetXWRTimezone(s.loc.String())

	stamp := now.UTC()
	for _, e := range s.GetEvents(ctx) {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(stamp)
		ve.SetAllDayStartAt(dateTime(e.StartDate))
		ve.SetAllDayEndAt(dateTime(e.EndDate.AddDays(1)))
		ve.SetSummary(e.Title)
		ve.AddProperty(ical.ComponentPropertyCategories, string(e.Type))
		ve.AddProperty(ical.ComponentProperty("X-EVENT-COLOR"), e.Color.Hex())
		if e.StartTime != "" {
			ve.SetDescription(timeRange(e.StartTime, e.EndTime))
		}
	}

	filename := now.In(s.loc).Format(exportFilenameLayout) + ".ics"
	return filename, []byte(cal.Serialize())
}

func dateTime(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func timeRange(start, end string) string {
	if end == "" {
		return start
	}
	return start + "-" + end
}
