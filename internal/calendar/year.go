package calendar

import (
	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

type YearView struct {
	Year    int
	Columns int
	Rows    [][]Slot[Cell]
}

// BuildYear derives the whole grid for year from one snapshot of events.
func BuildYear(year int, events []*model.Event, holidays HolidayLookup, today civil.Date) *YearView {
	days := GenerateDays(year)

	cells := make([]Cell, len(days))
	for i, d := range days {
		cells[i] = Annotate(d, events, holidays, today)
	}

	return &YearView{
		Year:    year,
		Columns: GridColumns,
		Rows:    Partition(cells, GridColumns),
	}
}
