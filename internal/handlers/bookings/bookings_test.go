package bookings

import (
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
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/service/bookingservice"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
)

func NewMock(t *testing.T) (*BookingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, id string, role auth.Role) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := auth.WithIdentity(context.Background(), "u1", role)
	return r.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

var booking = &domain.Booking{
	ID:                      "b1",
	SessionID:               "s1",
	MentorID:                "m1",
	MenteeID:                "u1",
	SessionFee:              30000,
	Status:                  domain.BookingConfirmed,
	AdminDisbursementStatus: domain.DisbursementPending,
	BookingTime:             time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
}

func TestBookSessionHandler(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "Booked", expectedCode: http.StatusCreated},
		{name: "Session not found", err: bookingservice.ErrSessionNotFound, expectedCode: http.StatusNotFound},
		{name: "Unknown mentee", err: bookingservice.ErrUserNotFound, expectedCode: http.StatusNotFound},
		{name: "Session full", err: bookingservice.ErrSessionFull, expectedCode: http.StatusConflict},
		{name: "Already booked", err: bookingservice.ErrAlreadyBooked, expectedCode: http.StatusConflict},
		{name: "Retries exhausted", err: pg.ErrConflict, expectedCode: http.StatusConflict},
		{name: "Insufficient balance", err: bookingservice.ErrInsufficientBalance, expectedCode: http.StatusPaymentRequired},
		{name: "Session closed", err: bookingservice.ErrSessionClosed, expectedCode: http.StatusUnprocessableEntity},
		{name: "Internal server error", err: errors.New("database error"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			if tt.err != nil {
				service.EXPECT().BookSession(gomock.Any(), "s1", "u1").Return(nil, tt.err)
			} else {
				service.EXPECT().BookSession(gomock.Any(), "s1", "u1").Return(booking, nil)
			}

			w := httptest.NewRecorder()
			handler.BookSession(w, newRequest(http.MethodPost, "/api/sessions/s1/book", "s1", auth.RoleMentee))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.BookingResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "b1", body.ID)
				assert.Equal(t, "300.00", body.SessionFee)
				assert.Equal(t, "confirmed", body.Status)
				assert.Equal(t, "pending", body.DisbursementStatus)
			}
		})
	}
}

func TestCancelBookingHandler(t *testing.T) {
	cancelled := *booking
	cancelled.Status = domain.BookingCancelled

	tests := []struct {
		name         string
		admin        bool
		err          error
		expectedCode int
	}{
		{name: "Owner cancels", expectedCode: http.StatusOK},
		{name: "Admin cancels", admin: true, expectedCode: http.StatusOK},
		{name: "Not the owner", err: bookingservice.ErrNotBookingOwner, expectedCode: http.StatusForbidden},
		{name: "Booking not found", err: bookingservice.ErrBookingNotFound, expectedCode: http.StatusNotFound},
		{name: "Already completed", err: bookingservice.ErrInvalidStatus, expectedCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			call := service.EXPECT().CancelBooking(gomock.Any(), "b1", "u1", tt.admin)
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&cancelled, nil)
			}

			w := httptest.NewRecorder()
			if tt.admin {
				handler.AdminCancelBooking(w, newRequest(http.MethodPost, "/api/admin/bookings/b1/cancel", "b1", auth.RoleAdmin))
			} else {
				handler.CancelBooking(w, newRequest(http.MethodPost, "/api/user/bookings/b1/cancel", "b1", auth.RoleMentee))
			}

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BookingResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "cancelled", body.Status)
			}
		})
	}
}

func TestGetBookingsHandler(t *testing.T) {
	tests := []struct {
		name         string
		bookings     []domain.Booking
		err          error
		expectedCode int
	}{
		{name: "Bookings found", bookings: []domain.Booking{*booking}, expectedCode: http.StatusOK},
		{name: "No bookings", expectedCode: http.StatusNoContent},
		{name: "Internal server error", err: errors.New("database error"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			service.EXPECT().GetBookings(gomock.Any(), "u1").Return(tt.bookings, tt.err)

			w := httptest.NewRecorder()
			handler.GetBookings(w, newRequest(http.MethodGet, "/api/user/bookings", "", auth.RoleMentee))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.BookingResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, 1)
			}
		})
	}
}

func TestGetSessionBookingsHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().GetSessionBookings(gomock.Any(), "s1").Return([]domain.Booking{*booking, *booking}, nil)

	w := httptest.NewRecorder()
	handler.GetSessionBookings(w, newRequest(http.MethodGet, "/api/admin/sessions/s1/bookings", "s1", auth.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.BookingResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 2)
}
