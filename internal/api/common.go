package api

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/calendar"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

// date is a calendar day written as YYYY-MM-DD.
type date civil.Date

type dateError struct {
	value string
}

func (e *dateError) Error() string {
	return fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", e.value)
}

func (d *date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dateError{value: string(data)}
	}

	if s == "" {
		*d = date{}
		return nil
	}

	parsed, err := civil.ParseDate(s)
	if err != nil {
		return &dateError{value: s}
	}

	*d = date(parsed)
	return nil
}

type eventReq struct {
	Title     string          `json:"title"`
	StartDate date            `json:"startDate"`
	EndDate   date            `json:"endDate"`
	Type      model.EventType `json:"type"`
	Color     model.Color     `json:"color"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
}

func (req *eventReq) toEventCreate() *model.EventCreate {
	return &model.EventCreate{
		Title:     req.Title,
		StartDate: civil.Date(req.StartDate),
		EndDate:   civil.Date(req.EndDate),
		Type:      req.Type,
		Color:     req.Color,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
}

type eventResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Type      string `json:"type"`
	Color     string `json:"color"`
	ColorHex  string `json:"colorHex"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

func mapToEventResp(e *model.Event) (*eventResp, error) {
	return &eventResp{
		ID:        e.ID,
		Title:     e.Title,
		StartDate: e.StartDate.String(),
		EndDate:   e.EndDate.String(),
		Type:      string(e.Type),
		Color:     string(e.Color),
		ColorHex:  e.Color.Hex(),
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
	}, nil
}

type renderResp struct {
	Kind         string `json:"kind"`
	RoundedLeft  bool   `json:"roundedLeft"`
	RoundedRight bool   `json:"roundedRight"`
	ShowTitle    bool   `json:"showTitle"`
}

type activeEventResp struct {
	Event   *eventResp  `json:"event"`
	IsStart bool        `json:"isStart"`
	IsEnd   bool        `json:"isEnd"`
	Render  *renderResp `json:"render"`
}

func mapToActiveEventResp(ae calendar.ActiveEvent) (*activeEventResp, error) {
	event, _ := mapToEventResp(ae.Event)

	return &activeEventResp{
		Event:   event,
		IsStart: ae.IsStart,
		IsEnd:   ae.IsEnd,
		Render: &renderResp{
			Kind:         string(ae.Render.Kind),
			RoundedLeft:  ae.Render.RoundedLeft,
			RoundedRight: ae.Render.RoundedRight,
			ShowTitle:    ae.Render.ShowTitle,
		},
	}, nil
}

type holidayResp struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	CutiBersama bool   `json:"cutiBersama"`
}

func mapToHolidayResp(h model.Holiday) (*holidayResp, error) {
	return &holidayResp{
		Date:        h.Date.String(),
		Name:        h.Name,
		CutiBersama: h.CutiBersama,
	}, nil
}

type cellResp struct {
	Date         string             `json:"date"`
	DayOfMonth   int                `json:"dayOfMonth"`
	DayOfWeek    string             `json:"dayOfWeek"`
	MonthName    string             `json:"monthName"`
	FirstOfMonth bool               `json:"firstOfMonth"`
	Weekend      bool               `json:"weekend"`
	Today        bool               `json:"today"`
	Holiday      *holidayResp       `json:"holiday,omitempty"`
	Events       []*activeEventResp `json:"events"`

	Background    string `json:"background"`
	LabelTint     string `json:"labelTint"`
	NumberTint    string `json:"numberTint"`
	HolidayMarker string `json:"holidayMarker,omitempty"`
}

func mapToCellResp(c calendar.Cell) *cellResp {
	events, _ := mapSlice(c.Events, mapToActiveEventResp)

	resp := &cellResp{
		Date:          c.Date.String(),
		DayOfMonth:    c.DayOfMonth,
		DayOfWeek:     c.DayOfWeek,
		MonthName:     c.MonthName,
		FirstOfMonth:  c.FirstOfMonth,
		Weekend:       c.Weekend,
		Today:         c.Today,
		Events:        events,
		Background:    string(c.Background),
		LabelTint:     string(c.LabelTint),
		NumberTint:    string(c.NumberTint),
		HolidayMarker: string(c.HolidayMarker),
	}
	if c.Holiday != nil {
		resp.Holiday, _ = mapToHolidayResp(*c.Holiday)
	}

	return resp
}

type yearResp struct {
	Year    int           `json:"year"`
	Today   string        `json:"today"`
	Columns int           `json:"columns"`
	Rows    [][]*cellResp `json:"rows"`
}

// mapToYearResp writes padding slots as null.
func mapToYearResp(v *calendar.YearView, today civil.Date) *yearResp {
	rows := make([][]*cellResp, len(v.Rows))
	for i, row := range v.Rows {
		rows[i] = make([]*cellResp, len(row))
		for j, slot := range row {
			if !slot.Empty {
				rows[i][j] = mapToCellResp(slot.Value)
			}
		}
	}

	return &yearResp{
		Year:    v.Year,
		Today:   today.String(),
		Columns: v.Columns,
		Rows:    rows,
	}
}
