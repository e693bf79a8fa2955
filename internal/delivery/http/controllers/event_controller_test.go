package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evonto/internal/delivery/http/helpers"
	"evonto/internal/delivery/http/middleware"
	"evonto/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createEventErr       error
	getEventByIDErr      error
	listAllErr           error
	listByCreatorErr     error
	deleteEventErr       error
	guestListErr         error
	eventByID            map[int64]*domain.Event
	eventsByCreator      map[int64][]*domain.Event
	allEvents            []*domain.Event
	guestListResult      *domain.EventWithGuestList
	lastCreateEvent      *domain.Event
	lastDeleteEventID    int64
	lastDeleteCallerID   int64
	lastGuestListEventID int64
	lastGuestListCaller  int64
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	f.lastCreateEvent = event
	if f.createEventErr != nil {
		return f.createEventErr
	}
	event.ID = 42
	return nil
}

func (f *fakeEventService) GetEventByID(ctx context.Context, eventID int64) (*domain.Event, error) {
	if f.getEventByIDErr != nil {
		return nil, f.getEventByIDErr
	}
	if e, ok := f.eventByID[eventID]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) ListAllEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.listAllErr != nil {
		return nil, f.listAllErr
	}
	if f.allEvents != nil {
		return f.allEvents, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) ListEventsByCreator(ctx context.Context, creatorID int64) ([]*domain.Event, error) {
	if f.listByCreatorErr != nil {
		return nil, f.listByCreatorErr
	}
	if events, ok := f.eventsByCreator[creatorID]; ok {
		return events, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, eventID, callerID int64) error {
	f.lastDeleteEventID = eventID
	f.lastDeleteCallerID = callerID
	return f.deleteEventErr
}

func (f *fakeEventService) GetEventGuestList(ctx context.Context, eventID, callerID int64) (*domain.EventWithGuestList, error) {
	f.lastGuestListEventID = eventID
	f.lastGuestListCaller = callerID
	if f.guestListErr != nil {
		return nil, f.guestListErr
	}
	return f.guestListResult, nil
}

func TestEventController_CreateEvent(t *testing.T) {
	validBody := `{"title":"Launch Party","start_date_time":"2026-06-01T18:00:00Z","end_date_time":"2026-06-01T22:00:00Z","location":"HQ rooftop"}`

	tests := []struct {
		name           string
		body           string
		fakeErr        error
		noUserContext  bool
		wantStatus     int
		wantBodySubstr string
		checkEvent     func(t *testing.T, event domain.Event)
	}{
		{
			name:       "success",
			body:       validBody,
			wantStatus: http.StatusCreated,
			checkEvent: func(t *testing.T, event domain.Event) {
				assert.Equal(t, int64(42), event.ID)
				assert.Equal(t, "Launch Party", event.Title)
				assert.Equal(t, int64(123), event.CreatedBy)
				require.NotNil(t, event.Location)
				assert.Equal(t, "HQ rooftop", *event.Location)
			},
		},
		{
			name:           "no user in context",
			body:           validBody,
			noUserContext:  true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing title",
			body:           `{"start_date_time":"2026-06-01T18:00:00Z","end_date_time":"2026-06-01T22:00:00Z"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "title is required",
		},
		{
			name:           "missing times",
			body:           `{"title":"Launch Party"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "start_date_time is required",
		},
		{
			name:           "unknown field rejected",
			body:           `{"title":"Launch Party","start_date_time":"2026-06-01T18:00:00Z","end_date_time":"2026-06-01T22:00:00Z","event_id":99}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "service error",
			body:           validBody,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{createEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if !tt.noUserContext {
				req = req.WithContext(middleware.SetUserID(req.Context(), 123))
			}
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated && tt.checkEvent != nil {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var event domain.Event
				require.NoError(t, json.Unmarshal(dataBytes, &event))
				tt.checkEvent(t, event)
			}
			if tt.wantStatus != http.StatusCreated && tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestEventController_ListMyEvents(t *testing.T) {
	tests := []struct {
		name            string
		noUserContext   bool
		fakeErr         error
		eventsByCreator map[int64][]*domain.Event
		wantStatus      int
		wantBodySubstr  string
		checkEvents     func(t *testing.T, events []domain.Event)
	}{
		{
			name: "success with events",
			eventsByCreator: map[int64][]*domain.Event{
				123: {
					{ID: 1, Title: "Launch Party", CreatedBy: 123},
					{ID: 2, Title: "Retro", CreatedBy: 123},
				},
			},
			wantStatus: http.StatusOK,
			checkEvents: func(t *testing.T, events []domain.Event) {
				require.Len(t, events, 2)
				assert.Equal(t, int64(1), events[0].ID)
				assert.Equal(t, "Launch Party", events[0].Title)
			},
		},
		{
			name:            "success empty",
			eventsByCreator: map[int64][]*domain.Event{123: {}},
			wantStatus:      http.StatusOK,
			checkEvents: func(t *testing.T, events []domain.Event) {
				require.Len(t, events, 0)
			},
		},
		{
			name:           "no user in context",
			noUserContext:  true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "service error",
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{
				listByCreatorErr: tt.fakeErr,
				eventsByCreator:  tt.eventsByCreator,
			}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/my", nil)
			if !tt.noUserContext {
				req = req.WithContext(middleware.SetUserID(req.Context(), 123))
			}
			rr := httptest.NewRecorder()
			ctrl.ListMyEvents(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusOK && tt.checkEvents != nil {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var events []domain.Event
				require.NoError(t, json.Unmarshal(dataBytes, &events))
				tt.checkEvents(t, events)
			}
			if tt.wantStatus != http.StatusOK && tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestEventController_GetEventByID(t *testing.T) {
	tests := []struct {
		name           string
		pathID         string
		fakeErr        error
		eventByID      map[int64]*domain.Event
		wantStatus     int
		wantBodySubstr string
		checkEvent     func(t *testing.T, event domain.Event)
	}{
		{
			name:   "success without auth",
			pathID: "42",
			eventByID: map[int64]*domain.Event{
				42: {ID: 42, Title: "Launch Party", CreatedBy: 123},
			},
			wantStatus: http.StatusOK,
			checkEvent: func(t *testing.T, event domain.Event) {
				assert.Equal(t, int64(42), event.ID)
				assert.Equal(t, "Launch Party", event.Title)
			},
		},
		{
			name:           "malformed id",
			pathID:         "not-a-number",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid eventID",
		},
		{
			name:           "event not found",
			pathID:         "999",
			eventByID:      map[int64]*domain.Event{},
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:           "service error",
			pathID:         "42",
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{getEventByIDErr: tt.fakeErr, eventByID: tt.eventByID}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/events/"+tt.pathID, nil)
			req.SetPathValue("eventID", tt.pathID)
			rr := httptest.NewRecorder()
			ctrl.GetEventByID(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusOK && tt.checkEvent != nil {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var event domain.Event
				require.NoError(t, json.Unmarshal(dataBytes, &event))
				tt.checkEvent(t, event)
			}
			if tt.wantStatus != http.StatusOK && tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	tests := []struct {
		name           string
		pathID         string
		noUserContext  bool
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkCall      func(t *testing.T, fake *fakeEventService)
	}{
		{
			name:       "success",
			pathID:     "42",
			wantStatus: http.StatusOK,
			checkCall: func(t *testing.T, fake *fakeEventService) {
				assert.Equal(t, int64(42), fake.lastDeleteEventID)
				assert.Equal(t, int64(123), fake.lastDeleteCallerID)
			},
		},
		{
			name:           "malformed id",
			pathID:         "abc",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid eventID",
		},
		{
			name:           "no user in context",
			pathID:         "42",
			noUserContext:  true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "not found",
			pathID:         "999",
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:           "forbidden",
			pathID:         "42",
			fakeErr:        domain.ErrForbidden,
			wantStatus:     http.StatusForbidden,
			wantBodySubstr: "not the owner",
		},
		{
			name:           "service error",
			pathID:         "42",
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{deleteEventErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "http://test/events/"+tt.pathID, nil)
			req.SetPathValue("eventID", tt.pathID)
			if !tt.noUserContext {
				req = req.WithContext(middleware.SetUserID(req.Context(), 123))
			}
			rr := httptest.NewRecorder()
			ctrl.DeleteEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK && tt.checkCall != nil {
				require.Nil(t, envelope.Error)
				tt.checkCall(t, fake)
			}
			if tt.wantBodySubstr != "" && envelope.Error != nil {
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestEventController_GetEventDetails(t *testing.T) {
	sentAt := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	guestList := &domain.EventWithGuestList{
		Event: &domain.Event{ID: 42, Title: "Launch Party", CreatedBy: 123},
		Invitations: []*domain.Invitation{
			{ID: 1, EventID: 42, GuestName: "Ada Lovelace", RSVPStatus: domain.RSVPMaybe, SentAt: sentAt},
		},
	}

	tests := []struct {
		name           string
		pathID         string
		noUserContext  bool
		fakeErr        error
		fakeResult     *domain.EventWithGuestList
		wantStatus     int
		wantBodySubstr string
		checkResponse  func(t *testing.T, data domain.EventWithGuestList)
	}{
		{
			name:       "success",
			pathID:     "42",
			fakeResult: guestList,
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, data domain.EventWithGuestList) {
				require.NotNil(t, data.Event)
				assert.Equal(t, int64(42), data.Event.ID)
				require.Len(t, data.Invitations, 1)
				assert.Equal(t, "Ada Lovelace", data.Invitations[0].GuestName)
				assert.Equal(t, domain.RSVPMaybe, data.Invitations[0].RSVPStatus)
			},
		},
		{
			name:           "malformed id",
			pathID:         "42x",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid eventID",
		},
		{
			name:           "no user in context",
			pathID:         "42",
			noUserContext:  true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "not found",
			pathID:         "999",
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:           "forbidden",
			pathID:         "42",
			fakeErr:        domain.ErrForbidden,
			wantStatus:     http.StatusForbidden,
			wantBodySubstr: "do not own",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{guestListErr: tt.fakeErr, guestListResult: tt.fakeResult}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/events/"+tt.pathID+"/details", nil)
			req.SetPathValue("eventID", tt.pathID)
			if !tt.noUserContext {
				req = req.WithContext(middleware.SetUserID(req.Context(), 123))
			}
			rr := httptest.NewRecorder()
			ctrl.GetEventDetails(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK && tt.checkResponse != nil {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var data domain.EventWithGuestList
				require.NoError(t, json.Unmarshal(dataBytes, &data))
				tt.checkResponse(t, data)
			}
			if tt.wantBodySubstr != "" && envelope.Error != nil {
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}
