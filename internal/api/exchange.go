package api

import (
	"fmt"
	"net/http"
)

func (a *Api) exportEventsHandler(w http.ResponseWriter, r *http.Request) {
	filename, data, err := a.eventsService.ExportEvents(r.Context(), a.now())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("export events: %w", err))
		return
	}

	a.writeAttachment(w, "application/json", filename, data)
}

func (a *Api) exportICSHandler(w http.ResponseWriter, r *http.Request) {
	filename, data := a.eventsService.ExportICS(r.Context(), a.now())

	a.writeAttachment(w, "text/calendar; charset=utf-8", filename, data)
}

// importEventsHandler replaces all events with the uploaded JSON array.
func (a *Api) importEventsHandler(w http.ResponseWriter, r *http.Request) {
	data, err := a.readBody(w, r, a.maxImportSize)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	n, err := a.eventsService.ImportEvents(r.Context(), data)
	if err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("import events: %w", err))
		return
	}

	a.logger.Infow("Events imported", "count", n)

	if err := a.writeJSON(w, http.StatusOK, map[string]int{"imported": n}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
