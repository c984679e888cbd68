package waitlist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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
	"github.com/GlebRadaev/mentorhub/internal/service/waitlistservice"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
)

func NewMock(t *testing.T) (*WaitlistHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(ctx context.Context, method, body string) *http.Request {
	r := httptest.NewRequest(method, "/api/sessions/s1/waitlist", bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "s1")
	return r.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func TestJoinWaitlistHandler(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	signedIn := auth.WithIdentity(context.Background(), "u1", auth.RoleMentee)

	tests := []struct {
		name         string
		ctx          context.Context
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectGuest  bool
	}{
		{
			name: "Signed-in mentee",
			ctx:  signedIn,
			body: `{"phone":"+8801712345678"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					JoinWaitlist(gomock.Any(), "s1", waitlistservice.Contact{MenteeID: "u1", Phone: "+8801712345678"}).
					Return(&domain.WaitlistEntry{SessionID: "s1", ContactID: "u1", MenteeID: "u1", Phone: "+8801712345678", JoinedAt: at}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Guest",
			ctx:  context.Background(),
			body: `{"phone":"01712345678"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					JoinWaitlist(gomock.Any(), "s1", waitlistservice.Contact{Phone: "01712345678"}).
					Return(&domain.WaitlistEntry{SessionID: "s1", ContactID: "guest-1", Phone: "01712345678", JoinedAt: at}, nil)
			},
			expectedCode: http.StatusOK,
			expectGuest:  true,
		},
		{
			name:         "Invalid request body",
			ctx:          context.Background(),
			body:         `{"phone":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Missing phone",
			ctx:  context.Background(),
			body: `{}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().JoinWaitlist(gomock.Any(), "s1", waitlistservice.Contact{}).
					Return(nil, waitlistservice.ErrPhoneRequired)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Session not found",
			ctx:  signedIn,
			body: `{"phone":"+8801712345678"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().JoinWaitlist(gomock.Any(), "s1", gomock.Any()).
					Return(nil, waitlistservice.ErrSessionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.JoinWaitlist(w, newRequest(tt.ctx, http.MethodPost, tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WaitlistEntryResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectGuest, body.Guest)
			}
		})
	}
}

func TestGetWaitlistHandler(t *testing.T) {
	t.Run("Entries in join order", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetWaitlist(gomock.Any(), "s1").Return([]domain.WaitlistEntry{
			{SessionID: "s1", ContactID: "u1", MenteeID: "u1"},
			{SessionID: "s1", ContactID: "guest-1"},
		}, nil)

		w := httptest.NewRecorder()
		handler.GetWaitlist(w, newRequest(context.Background(), http.MethodGet, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.WaitlistEntryResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		require.Len(t, body, 2)
		assert.Equal(t, "u1", body[0].ContactID)
		assert.True(t, body[1].Guest)
	})

	t.Run("Internal server error", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetWaitlist(gomock.Any(), "s1").Return(nil, errors.New("database error"))

		w := httptest.NewRecorder()
		handler.GetWaitlist(w, newRequest(context.Background(), http.MethodGet, ""))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
