package api

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/holidays"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"github.com/SergeyKozhin/yearly-calendar/internal/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger
	loc     *time.Location
	now     func() time.Time

	editors       auth.Credentials
	maxImportSize int64

	eventsService eventsService
	holidays      holidayRegistry
}

type eventsService interface {
	GetEvents(ctx context.Context) []*model.Event
	GetEventByID(ctx context.Context, id string) (*model.Event, error)
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeleteEvent(ctx context.Context, id string) error
	ImportEvents(ctx context.Context, data []byte) (int, error)
	ExportEvents(ctx context.Context, now time.Time) (string, []byte, error)
	ExportICS(ctx context.Context, now time.Time) (string, []byte)
}

type holidayRegistry interface {
	Lookup(date civil.Date) (*model.Holiday, bool)
	ForYear(year int) holidays.Table
}

func NewApi(
	logger *zap.SugaredLogger,
	loc *time.Location,
	editors auth.Credentials,
	maxImportSize int64,
	eventsService eventsService,
	holidays holidayRegistry,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		loc:           loc,
		now:           time.Now,
		editors:       editors,
		maxImportSize: maxImportSize,
		eventsService: eventsService,
		holidays:      holidays,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/palette", a.getPaletteHandler)
	r.Get("/years/{year}", a.getYearHandler)
	r.Get("/days/{date}", a.getDayHandler)
	r.Get("/holidays/{year}", a.getHolidaysHandler)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", a.getEventsHandler)
		r.Get("/export", a.exportEventsHandler)
		r.Get("/export.ics", a.exportICSHandler)
		r.Get("/{id}", a.getEventHandler)

		r.Group(func(r chi.Router) {
			r.Use(a.requireEditor)
			r.Post("/", a.createEventHandler)
			r.Post("/import", a.importEventsHandler)
			r.Put("/{id}", a.updateEventHandler)
			r.Delete("/{id}", a.deleteEventHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// today is the current date on the configured wall clock.
func (a *Api) today() civil.Date {
	return civil.DateOf(a.now().In(a.loc))
}
