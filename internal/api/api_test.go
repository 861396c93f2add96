package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyKozhin/yearly-calendar/internal/business/events"
	"github.com/SergeyKozhin/yearly-calendar/internal/holidays"
	"github.com/SergeyKozhin/yearly-calendar/internal/pkg/auth"
	"github.com/SergeyKozhin/yearly-calendar/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var wib = time.FixedZone("WIB", 7*60*60)

type testServer struct {
	api     *Api
	service *events.Service
}

func newTestServer(t *testing.T, editors auth.Credentials) *testServer {
	t.Helper()

	logger := zap.NewNop().Sugar()

	service := events.NewService(logger, storage.NewMemoryStore(), wib)
	require.NoError(t, service.Load(context.Background()))

	registry, err := holidays.NewDefaultRegistry("")
	require.NoError(t, err)

	a, err := NewApi(logger, wib, editors, 1024, service, registry)
	require.NoError(t, err)
	a.now = func() time.Time { return time.Date(2026, time.March, 10, 9, 30, 0, 0, wib) }

	return &testServer{api: a, service: service}
}

func (s *testServer) do(t *testing.T, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	w := httptest.NewRecorder()
	s.api.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

const baliJSON = `{"title":"Bali","startDate":"2026-03-10","endDate":"2026-03-12","type":"Trip"}`

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/healthcheck", "").Code)
}

func TestEventCRUD(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})

	w := s.do(t, http.MethodPost, "/events", baliJSON)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[eventResp](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "/events/"+created.ID, w.Header().Get("Location"))
	assert.Equal(t, "teal", created.Color)
	assert.Equal(t, "#14b8a6", created.ColorHex)

	w = s.do(t, http.MethodGet, "/events/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[eventResp](t, w))

	w = s.do(t, http.MethodPut, "/events/"+created.ID,
		`{"title":"Bali again","startDate":"2026-03-10","endDate":"2026-03-14","type":"Trip","color":"blue"}`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	list := decode[[]eventResp](t, s.do(t, http.MethodGet, "/events", ""))
	require.Len(t, list, 1)
	assert.Equal(t, "Bali again", list[0].Title)
	assert.Equal(t, "2026-03-14", list[0].EndDate)

	w = s.do(t, http.MethodDelete, "/events/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, "[]\n", s.do(t, http.MethodGet, "/events", "").Body.String())
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/events/"+created.ID, "").Code)
}

func TestUnknownIDsAreNoops(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodPut, "/events/ghost", baliJSON).Code)
	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/events/ghost", "").Code)
	assert.Empty(t, s.service.GetEvents(context.Background()))
}

func TestCreateEventRejected(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		field  string
	}{
		{
			name:   "malformed json",
			body:   `{"title":`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown key",
			body:   `{"title":"x","owner":"me"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "bad date",
			body:   `{"title":"x","startDate":"10/03/2026","endDate":"2026-03-10","type":"Trip"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "blank title",
			body:   `{"title":"  ","startDate":"2026-03-10","endDate":"2026-03-10","type":"Trip"}`,
			status: http.StatusUnprocessableEntity,
			field:  "title",
		},
		{
			name:   "inverted interval",
			body:   `{"title":"x","startDate":"2026-03-10","endDate":"2026-03-09","type":"Trip"}`,
			status: http.StatusUnprocessableEntity,
			field:  "endDate",
		},
		{
			name:   "unknown type",
			body:   `{"title":"x","startDate":"2026-03-10","endDate":"2026-03-10","type":"Holiday"}`,
			status: http.StatusUnprocessableEntity,
			field:  "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, auth.Credentials{})

			w := s.do(t, http.MethodPost, "/events", tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())

			if tt.field != "" {
				resp := decode[struct {
					Error map[string]string `json:"error"`
				}](t, w)
				assert.Contains(t, resp.Error, tt.field)
			}
			assert.Empty(t, s.service.GetEvents(context.Background()))
		})
	}
}

func TestUpdateIDMismatch(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})

	w := s.do(t, http.MethodPut, "/events/a", `{"id":"b","title":"x","startDate":"2026-03-10","endDate":"2026-03-10","type":"Trip"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestYearView(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/events", baliJSON).Code)

	w := s.do(t, http.MethodGet, "/years/2026", "")
	require.Equal(t, http.StatusOK, w.Code)

	view := decode[yearResp](t, w)
	assert.Equal(t, 2026, view.Year)
	assert.Equal(t, "2026-03-10", view.Today)
	assert.Equal(t, 25, view.Columns)
	require.Len(t, view.Rows, 15)

	last := view.Rows[14]
	require.Len(t, last, 25)
	assert.Nil(t, last[24], "padding slots are null")

	var cells []*cellResp
	for _, row := range view.Rows {
		for _, c := range row {
			if c != nil {
				cells = append(cells, c)
			}
		}
	}
	require.Len(t, cells, 365)

	jan1 := cells[0]
	assert.Equal(t, "THU", jan1.DayOfWeek)
	assert.Equal(t, "JAN", jan1.MonthName)
	assert.True(t, jan1.FirstOfMonth)
	require.NotNil(t, jan1.Holiday)
	assert.Equal(t, "holiday", jan1.Background)

	mar10 := cells[68]
	assert.Equal(t, "2026-03-10", mar10.Date)
	assert.True(t, mar10.Today)
	assert.Equal(t, "today", mar10.NumberTint)
	require.Len(t, mar10.Events, 1)
	assert.True(t, mar10.Events[0].IsStart)
	assert.Equal(t, "ribbon", mar10.Events[0].Render.Kind)
	assert.True(t, mar10.Events[0].Render.ShowTitle)

	mar12 := cells[70]
	require.Len(t, mar12.Events, 1)
	assert.True(t, mar12.Events[0].IsEnd)
	assert.True(t, mar12.Events[0].Render.RoundedRight)
	assert.False(t, mar12.Events[0].Render.ShowTitle)

	assert.Empty(t, cells[71].Events)
}

func TestYearOutOfRange(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})

	for _, year := range []string{"0", "10000", "abc"} {
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/years/"+year, "").Code, year)
	}
}

func TestDayOverview(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/events", baliJSON).Code)

	type dayResp struct {
		Date    string             `json:"date"`
		Action  string             `json:"action"`
		Holiday *holidayResp       `json:"holiday"`
		Events  []*activeEventResp `json:"events"`
	}

	day := decode[dayResp](t, s.do(t, http.MethodGet, "/days/2026-03-11", ""))
	assert.Equal(t, "overview", day.Action)
	require.Len(t, day.Events, 1)
	assert.False(t, day.Events[0].IsStart)
	assert.False(t, day.Events[0].IsEnd)

	empty := decode[dayResp](t, s.do(t, http.MethodGet, "/days/2026-01-01", ""))
	assert.Equal(t, "create", empty.Action)
	assert.Empty(t, empty.Events)
	require.NotNil(t, empty.Holiday)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/days/2026-02-30", "").Code)
}

func TestHolidaysAndPalette(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})

	list := decode[[]holidayResp](t, s.do(t, http.MethodGet, "/holidays/2026", ""))
	assert.Len(t, list, 25)
	assert.Equal(t, "2026-01-01", list[0].Date)

	assert.Equal(t, "[]\n", s.do(t, http.MethodGet, "/holidays/2030", "").Body.String())

	palette := decode[struct {
		Colors []struct {
			Name string `json:"name"`
			Hex  string `json:"hex"`
		} `json:"colors"`
		Defaults map[string]string `json:"defaults"`
	}](t, s.do(t, http.MethodGet, "/palette", ""))
	assert.Len(t, palette.Colors, 7)
	assert.Equal(t, "orange", palette.Defaults["Personal"])
}

func TestExportAndImport(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/events", baliJSON).Code)

	w := s.do(t, http.MethodGet, "/events/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="calendar_events_20260310_0930.json"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), `"startDate": "2026-03-10T00:00:00+07:00"`)
	exported := w.Body.String()

	ics := s.do(t, http.MethodGet, "/events/export.ics", "")
	require.Equal(t, http.StatusOK, ics.Code)
	assert.Contains(t, ics.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, ics.Body.String(), "SUMMARY:Bali")

	other := newTestServer(t, auth.Credentials{})
	w = other.do(t, http.MethodPost, "/events/import", exported)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, map[string]int{"imported": 1}, decode[map[string]int](t, w))
	assert.Equal(t, s.service.GetEvents(context.Background()), other.service.GetEvents(context.Background()))
}

func TestImportRejected(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/events", baliJSON).Code)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/events/import", `{"events":[]}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/events/import", strings.Repeat(" ", 2048)).Code, "body over the limit")
	assert.Equal(t, http.StatusUnprocessableEntity, s.do(t, http.MethodPost, "/events/import",
		`[{"id":"a","title":"","startDate":"2026-01-01","endDate":"2026-01-01","type":"Trip","color":"teal"}]`).Code)

	assert.Len(t, s.service.GetEvents(context.Background()), 1)
}

func TestEditorAuth(t *testing.T) {
	hash, err := auth.HashPassword(rand.Reader, "s3cret")
	require.NoError(t, err)
	s := newTestServer(t, auth.Credentials{User: "editor", Hash: hash})

	post := func(user, password string) int {
		r := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(baliJSON))
		if user != "" {
			r.SetBasicAuth(user, password)
		}
		w := httptest.NewRecorder()
		s.api.ServeHTTP(w, r)

		if w.Code == http.StatusUnauthorized {
			assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")
		}
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, post("", ""))
	assert.Equal(t, http.StatusUnauthorized, post("editor", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, post("someone", "s3cret"))
	assert.Equal(t, http.StatusCreated, post("editor", "s3cret"))

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/events", "").Code, "reads stay open")
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodDelete, "/events/x", "").Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, auth.Credentials{})

	assert.Equal(t, http.StatusMethodNotAllowed, s.do(t, http.MethodPatch, "/events/x", "{}").Code)
}
