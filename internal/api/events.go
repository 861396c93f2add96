package api

import (
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"github.com/SergeyKozhin/yearly-calendar/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.eventsService.CreateEvent(r.Context(), req.toEventCreate())
	if err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	resp, _ := mapToEventResp(event)

	headers := make(http.Header)
	headers.Set("Location", "/events/"+event.ID)

	if err := a.writeJSON(w, http.StatusCreated, resp, headers); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	events := a.eventsService.GetEvents(r.Context())

	resp, _ := mapSlice(events, mapToEventResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := a.eventsService.GetEventByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("get event: %w", err))
		return
	}

	resp, _ := mapToEventResp(event)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// updateEventHandler answers 204 for unknown ids too; the list is left as is.
func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		ID string `json:"id"`
		eventReq
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")

	v := validator.New()
	v.Check(req.ID == "" || req.ID == id, "id", "id must match the URL")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := a.eventsService.UpdateEvent(r.Context(), &model.Event{
		ID:          id,
		EventCreate: *req.toEventCreate(),
	}); err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("update event: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.eventsService.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
