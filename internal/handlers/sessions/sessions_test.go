package sessions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/dto"
	"github.com/GlebRadaev/mentorhub/internal/service/sessionservice"
)

func NewMock(t *testing.T) (*SessionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, id string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

var scheduledAt = time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

func TestCreateSessionHandler(t *testing.T) {
	created := &domain.Session{
		ID: "s1", MentorID: "m1", Title: "Mock interview", SessionFee: 30000, Capacity: 10,
		BookedBy: []string{"u1"}, Status: domain.SessionScheduled, ScheduledAt: scheduledAt,
	}
	req := sessionservice.CreateSessionRequest{
		MentorID: "m1", Title: "Mock interview", SessionFee: 30000, Capacity: 10, ScheduledAt: scheduledAt,
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"mentor_id":"m1","title":"Mock interview","session_fee":"300.00","capacity":10,"scheduled_at":"2024-06-01T15:00:00Z"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateSession(gomock.Any(), req).Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"mentor_id":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Fee with sub-cent precision",
			body:         `{"mentor_id":"m1","title":"Mock interview","session_fee":"300.001","capacity":10}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Mentor not found",
			body: `{"mentor_id":"m1","title":"Mock interview","session_fee":300,"capacity":10,"scheduled_at":"2024-06-01T15:00:00Z"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateSession(gomock.Any(), req).Return(nil, sessionservice.ErrMentorNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Invalid session",
			body: `{"mentor_id":"m1","title":"Mock interview","session_fee":"300","capacity":10,"scheduled_at":"2024-06-01T15:00:00Z"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateSession(gomock.Any(), req).Return(nil, sessionservice.ErrInvalidSession)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.CreateSession(w, newRequest(http.MethodPost, "/api/admin/sessions", "", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.SessionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "300.00", body.SessionFee)
				assert.Equal(t, 1, body.BookedCount)
				assert.Equal(t, 9, body.SeatsLeft)
			}
		})
	}
}

func TestSessionLifecycleHandlers(t *testing.T) {
	tests := []struct {
		name         string
		call         func(h *SessionHandler) http.HandlerFunc
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Start",
			call: func(h *SessionHandler) http.HandlerFunc { return h.StartSession },
			prepareMock: func(service *MockService) {
				service.EXPECT().StartSession(gomock.Any(), "s1").
					Return(&domain.Session{ID: "s1", Status: domain.SessionActive, Capacity: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Start twice",
			call: func(h *SessionHandler) http.HandlerFunc { return h.StartSession },
			prepareMock: func(service *MockService) {
				service.EXPECT().StartSession(gomock.Any(), "s1").Return(nil, sessionservice.ErrInvalidStatus)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Complete",
			call: func(h *SessionHandler) http.HandlerFunc { return h.CompleteSession },
			prepareMock: func(service *MockService) {
				service.EXPECT().CompleteSession(gomock.Any(), "s1").
					Return(&domain.Session{ID: "s1", Status: domain.SessionCompleted, Capacity: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Complete unknown session",
			call: func(h *SessionHandler) http.HandlerFunc { return h.CompleteSession },
			prepareMock: func(service *MockService) {
				service.EXPECT().CompleteSession(gomock.Any(), "s1").Return(nil, sessionservice.ErrSessionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Get",
			call: func(h *SessionHandler) http.HandlerFunc { return h.GetSession },
			prepareMock: func(service *MockService) {
				service.EXPECT().GetSession(gomock.Any(), "s1").
					Return(&domain.Session{ID: "s1", Status: domain.SessionScheduled, Capacity: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Get fails",
			call: func(h *SessionHandler) http.HandlerFunc { return h.GetSession },
			prepareMock: func(service *MockService) {
				service.EXPECT().GetSession(gomock.Any(), "s1").Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			tt.call(handler)(w, newRequest(http.MethodPost, "/", "s1", nil))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListSessionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListSessions(gomock.Any()).Return([]domain.Session{
		{ID: "s1", Capacity: 2, BookedBy: []string{"u1", "u2"}, Status: domain.SessionScheduled},
	}, nil)

	w := httptest.NewRecorder()
	handler.ListSessions(w, httptest.NewRequest(http.MethodGet, "/api/sessions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.SessionResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, 0, body[0].SeatsLeft)
}

func TestMentorHandlers(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CreateMentor(gomock.Any(), "Arif").Return(&domain.Mentor{ID: "m1", Name: "Arif", IsActive: true}, nil)

		w := httptest.NewRecorder()
		handler.CreateMentor(w, newRequest(http.MethodPost, "/api/admin/mentors", "", bytes.NewBufferString(`{"name":"Arif"}`)))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Create without name", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CreateMentor(gomock.Any(), "").Return(nil, sessionservice.ErrInvalidMentor)

		w := httptest.NewRecorder()
		handler.CreateMentor(w, newRequest(http.MethodPost, "/api/admin/mentors", "", bytes.NewBufferString(`{}`)))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Get", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetMentor(gomock.Any(), "m1").Return(&domain.Mentor{ID: "m1", TotalSessions: 4}, nil)

		w := httptest.NewRecorder()
		handler.GetMentor(w, newRequest(http.MethodGet, "/api/admin/mentors/m1", "m1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.MentorResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 4, body.TotalSessions)
	})
}
