package calendar

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type holidayList []model.Holiday

func (l holidayList) Lookup(d civil.Date) (*model.Holiday, bool) {
	for i := range l {
		if l[i].Date == d {
			return &l[i], true
		}
	}
	return nil, false
}

var testHolidays = holidayList{
	{Date: date(2026, time.March, 19), Name: "Hari Suci Nyepi"},
	{Date: date(2026, time.March, 18), Name: "Cuti Bersama Nyepi", CutiBersama: true},
	{Date: date(2026, time.March, 21), Name: "Idulfitri 1447 Hijriah"},
}

func dayOf(d civil.Date) model.DayData {
	return dayData(d)
}

func TestAnnotateTints(t *testing.T) {
	today := date(2026, time.January, 5)

	tests := []struct {
		name   string
		day    civil.Date
		bg     Tint
		label  Tint
		number Tint
		marker Marker
	}{
		{"weekday", date(2026, time.March, 17), TintDefault, TintDefault, TintDefault, MarkerNone},
		{"weekend", date(2026, time.March, 15), TintWeekend, TintWeekend, TintDefault, MarkerNone},
		{"national holiday", date(2026, time.March, 19), TintHoliday, TintHoliday, TintHoliday, MarkerPulse},
		{"cuti bersama", date(2026, time.March, 18), TintCutiBersama, TintHoliday, TintHoliday, MarkerSoft},
		{"holiday on a saturday", date(2026, time.March, 21), TintHoliday, TintHoliday, TintHoliday, MarkerPulse},
		{"today", today, TintDefault, TintDefault, TintToday, MarkerNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Annotate(dayOf(tt.day), nil, testHolidays, today)
			assert.Equal(t, tt.bg, c.Background)
			assert.Equal(t, tt.label, c.LabelTint)
			assert.Equal(t, tt.number, c.NumberTint)
			assert.Equal(t, tt.marker, c.HolidayMarker)
		})
	}
}

func TestAnnotateHolidayOnToday(t *testing.T) {
	day := date(2026, time.March, 19)

	c := Annotate(dayOf(day), nil, testHolidays, day)
	assert.True(t, c.Today)
	assert.Equal(t, TintToday, c.NumberTint)
	assert.Equal(t, TintHoliday, c.Background)
	assert.Equal(t, MarkerNone, c.HolidayMarker)
}

func TestAnnotateHolidayAndEvents(t *testing.T) {
	day := date(2026, time.March, 19)
	events := []*model.Event{event("bali", model.EventTypeTrip, day.AddDays(-1), day.AddDays(2))}

	c := Annotate(dayOf(day), events, testHolidays, date(2026, time.January, 1))
	require.NotNil(t, c.Holiday)
	assert.Equal(t, "Hari Suci Nyepi", c.Holiday.Name)
	assert.Equal(t, TintHoliday, c.Background)
	require.Len(t, c.Events, 1)
	assert.Equal(t, "bali", c.Events[0].Event.ID)

	without := Annotate(dayOf(day), nil, testHolidays, date(2026, time.January, 1))
	assert.Equal(t, c.Background, without.Background)
	assert.Equal(t, c.Holiday, without.Holiday)
}

func TestAnnotateNilHolidays(t *testing.T) {
	c := Annotate(dayOf(date(2026, time.March, 19)), nil, nil, date(2026, time.January, 1))
	assert.Nil(t, c.Holiday)
	assert.Equal(t, TintDefault, c.Background)
}

func TestBuildYear(t *testing.T) {
	events := []*model.Event{event("trip", model.EventTypeTrip, date(2026, time.March, 10), date(2026, time.March, 12))}
	view := BuildYear(2026, events, testHolidays, date(2026, time.October, 16))

	assert.Equal(t, 2026, view.Year)
	assert.Equal(t, GridColumns, view.Columns)
	require.Len(t, view.Rows, 15)

	var cells []Cell
	for _, row := range view.Rows {
		for _, s := range row {
			if !s.Empty {
				cells = append(cells, s.Value)
			}
		}
	}
	require.Len(t, cells, 365)

	withEvents := 0
	todays := 0
	for _, c := range cells {
		if len(c.Events) > 0 {
			withEvents++
		}
		if c.Today {
			todays++
			assert.Equal(t, date(2026, time.October, 16), c.Date)
		}
	}
	assert.Equal(t, 3, withEvents)
	assert.Equal(t, 1, todays)
}

func TestOverview(t *testing.T) {
	day := date(2026, time.March, 19)
	events := []*model.Event{
		event("bali", model.EventTypeTrip, day.AddDays(-1), day.AddDays(2)),
		event("later", model.EventTypeWork, day.AddDays(5), day.AddDays(5)),
	}

	o := Overview(day, events, testHolidays)
	assert.Equal(t, DayActionOverview, o.Action)
	require.Len(t, o.Events, 1)
	assert.Equal(t, "bali", o.Events[0].ID)
	require.NotNil(t, o.Holiday)
	assert.False(t, o.Holiday.CutiBersama)

	empty := Overview(day.AddDays(3), events, testHolidays)
	assert.Equal(t, DayActionCreate, empty.Action)
	assert.Empty(t, empty.Events)
	assert.Nil(t, empty.Holiday)
}
