package payments

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
	"github.com/GlebRadaev/mentorhub/internal/service/paymentservice"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, id, body string, role auth.Role) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := auth.WithIdentity(context.Background(), "u1", role)
	return r.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

func TestSubmitPaymentHandler(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Submitted",
			body: `{"transaction_id":"TX1","amount":"800.00"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SubmitPendingPayment(gomock.Any(), "u1", "TX1", int64(80000)).
					Return(&domain.PendingPayment{ID: "p1", UserID: "u1", TransactionID: "TX1", Amount: 80000, CreatedAt: at}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"transaction_id":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Duplicate reference",
			body: `{"transaction_id":"TX1","amount":800}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SubmitPendingPayment(gomock.Any(), "u1", "TX1", int64(80000)).
					Return(nil, paymentservice.ErrDuplicateReference)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Non-positive amount",
			body: `{"transaction_id":"TX1","amount":"0"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SubmitPendingPayment(gomock.Any(), "u1", "TX1", int64(0)).
					Return(nil, paymentservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Amount beyond int64 is rejected before the service",
			body:         `{"transaction_id":"TX1","amount":"184467440737095521.16"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.SubmitPayment(w, newRequest(http.MethodPost, "/api/user/payments", "", tt.body, auth.RoleMentee))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.PendingPaymentResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "800.00", body.Amount)
			}
		})
	}
}

func TestApprovePaymentHandler(t *testing.T) {
	tests := []struct {
		name         string
		balance      int64
		err          error
		expectedCode int
	}{
		{name: "Approved", balance: 180000, expectedCode: http.StatusOK},
		{name: "Already processed", err: paymentservice.ErrPaymentNotFound, expectedCode: http.StatusNotFound},
		{name: "Mentee missing", err: paymentservice.ErrUserNotFound, expectedCode: http.StatusNotFound},
		{name: "Balance would overflow", err: paymentservice.ErrBalanceOverflow, expectedCode: http.StatusUnprocessableEntity},
		{name: "Internal server error", err: errors.New("database error"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			service.EXPECT().ApprovePendingPayment(gomock.Any(), "p1", "u1").Return(tt.balance, tt.err)

			w := httptest.NewRecorder()
			handler.ApprovePayment(w, newRequest(http.MethodPost, "/api/admin/payments/p1/approve", "p1", "", auth.RoleAdmin))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "1800.00", body.Balance)
			}
		})
	}
}

func TestRejectPaymentHandler(t *testing.T) {
	t.Run("Rejected", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().RejectPendingPayment(gomock.Any(), "p1", "u1").Return(nil)

		w := httptest.NewRecorder()
		handler.RejectPayment(w, newRequest(http.MethodPost, "/api/admin/payments/p1/reject", "p1", "", auth.RoleAdmin))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().RejectPendingPayment(gomock.Any(), "p1", "u1").Return(paymentservice.ErrPaymentNotFound)

		w := httptest.NewRecorder()
		handler.RejectPayment(w, newRequest(http.MethodPost, "/api/admin/payments/p1/reject", "p1", "", auth.RoleAdmin))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetPendingPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().GetPendingPayments(gomock.Any()).Return([]domain.PendingPayment{
		{ID: "p1", Amount: 80000},
		{ID: "p2", Amount: 100},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetPendingPayments(w, newRequest(http.MethodGet, "/api/admin/payments", "", "", auth.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.PendingPaymentResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "1.00", body[1].Amount)
}
