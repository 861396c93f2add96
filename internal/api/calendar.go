package api

import (
	"net/http"

	"github.com/SergeyKozhin/yearly-calendar/internal/calendar"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

func (a *Api) getYearHandler(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		a.notFoundResponse(w, r)
		return
	}

	today := a.today()
	view := calendar.BuildYear(year, a.eventsService.GetEvents(r.Context()), a.holidays, today)

	if err := a.writeJSON(w, http.StatusOK, mapToYearResp(view, today), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getDayHandler(w http.ResponseWriter, r *http.Request) {
	type getDayResponse struct {
		Date    string             `json:"date"`
		Action  string             `json:"action"`
		Holiday *holidayResp       `json:"holiday,omitempty"`
		Events  []*activeEventResp `json:"events"`
	}

	day, ok := dateParam(r)
	if !ok {
		a.notFoundResponse(w, r)
		return
	}

	events := a.eventsService.GetEvents(r.Context())
	overview := calendar.Overview(day, events, a.holidays)
	active, _ := mapSlice(calendar.ActiveEvents(day, events), mapToActiveEventResp)

	resp := &getDayResponse{
		Date:   day.String(),
		Action: string(overview.Action),
		Events: active,
	}
	if overview.Holiday != nil {
		resp.Holiday, _ = mapToHolidayResp(*overview.Holiday)
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getHolidaysHandler(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		a.notFoundResponse(w, r)
		return
	}

	resp, _ := mapSlice(a.holidays.ForYear(year), mapToHolidayResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getPaletteHandler(w http.ResponseWriter, r *http.Request) {
	type colorResp struct {
		Name string     `json:"name"`
		Hex  string     `json:"hex"`
		RGB  [3]float64 `json:"rgb"`
	}
	type getPaletteResponse struct {
		Colors   []*colorResp      `json:"colors"`
		Defaults map[string]string `json:"defaults"`
	}

	resp := &getPaletteResponse{
		Colors:   make([]*colorResp, len(model.Palette)),
		Defaults: make(map[string]string, len(model.EventTypes)),
	}
	for i, c := range model.Palette {
		rgb := c.RGB()
		resp.Colors[i] = &colorResp{
			Name: string(c),
			Hex:  c.Hex(),
			RGB:  [3]float64{rgb.R, rgb.G, rgb.B},
		}
	}
	for _, t := range model.EventTypes {
		resp.Defaults[string(t)] = string(model.DefaultColor(t))
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
