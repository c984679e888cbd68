package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/handlers/auth"
	"github.com/GlebRadaev/mentorhub/internal/handlers/balance"
	"github.com/GlebRadaev/mentorhub/internal/handlers/bookings"
	"github.com/GlebRadaev/mentorhub/internal/handlers/coupons"
	"github.com/GlebRadaev/mentorhub/internal/handlers/disbursements"
	"github.com/GlebRadaev/mentorhub/internal/handlers/payments"
	"github.com/GlebRadaev/mentorhub/internal/handlers/sessions"
	"github.com/GlebRadaev/mentorhub/internal/handlers/waitlist"
	"github.com/GlebRadaev/mentorhub/internal/service"
	pkgauth "github.com/GlebRadaev/mentorhub/pkg/auth"
)

type mocks struct {
	auth          *auth.MockService
	balance       *balance.MockService
	bookings      *bookings.MockService
	sessions      *sessions.MockService
	waitlist      *waitlist.MockService
	payments      *payments.MockService
	coupons       *coupons.MockService
	disbursements *disbursements.MockService
}

func newRouter(t *testing.T, jwtService *pkgauth.JWTService) (chi.Router, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		auth:          auth.NewMockService(ctrl),
		balance:       balance.NewMockService(ctrl),
		bookings:      bookings.NewMockService(ctrl),
		sessions:      sessions.NewMockService(ctrl),
		waitlist:      waitlist.NewMockService(ctrl),
		payments:      payments.NewMockService(ctrl),
		coupons:       coupons.NewMockService(ctrl),
		disbursements: disbursements.NewMockService(ctrl),
	}
	services := &service.Services{
		AuthService:         m.auth,
		BalanceService:      m.balance,
		BookingService:      m.bookings,
		SessionService:      m.sessions,
		WaitlistService:     m.waitlist,
		PaymentService:      m.payments,
		CouponService:       m.coupons,
		DisbursementService: m.disbursements,
	}

	h := New(services, pkgauth.NewMiddleware(jwtService), []string{"http://localhost:3000"})
	router := chi.NewRouter()
	h.InitRoutes(router)
	return router, m
}

func TestNew(t *testing.T) {
	router, _ := newRouter(t, pkgauth.NewJWTService("secret"))
	assert.NotNil(t, router, "Router should not be nil")
}

func TestInitRoutes(t *testing.T) {
	jwtService := pkgauth.NewJWTService("secret")
	menteeToken, err := jwtService.GenerateJWT("u1", pkgauth.RoleMentee, time.Now().Add(time.Hour))
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT("admin1", pkgauth.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name        string
		method      string
		url         string
		token       string
		body        string
		prepareMock func(m *mocks)
		status      int
	}{
		{name: "register with bad body", method: "POST", url: "/api/user/register", status: http.StatusBadRequest},
		{name: "login with bad body", method: "POST", url: "/api/user/login", status: http.StatusBadRequest},
		{name: "balance without token", method: "GET", url: "/api/user/balance", status: http.StatusUnauthorized},
		{name: "transactions without token", method: "GET", url: "/api/user/transactions", status: http.StatusUnauthorized},
		{name: "bookings without token", method: "GET", url: "/api/user/bookings", status: http.StatusUnauthorized},
		{name: "cancel without token", method: "POST", url: "/api/user/bookings/b1/cancel", status: http.StatusUnauthorized},
		{name: "redeem without token", method: "POST", url: "/api/user/coupons/redeem", status: http.StatusUnauthorized},
		{name: "payment without token", method: "POST", url: "/api/user/payments", status: http.StatusUnauthorized},
		{name: "book without token", method: "POST", url: "/api/sessions/s1/book", status: http.StatusUnauthorized},
		{name: "tampered token", method: "GET", url: "/api/user/balance", token: menteeToken + "x", status: http.StatusUnauthorized},
		{name: "admin route as mentee", method: "GET", url: "/api/admin/payments", token: menteeToken, status: http.StatusForbidden},
		{name: "admin route without token", method: "POST", url: "/api/admin/coupons", status: http.StatusUnauthorized},
		{
			name:   "balance as mentee",
			method: "GET",
			url:    "/api/user/balance",
			token:  menteeToken,
			prepareMock: func(m *mocks) {
				m.balance.EXPECT().GetBalance(gomock.Any(), "u1").Return(int64(0), nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "public session list",
			method: "GET",
			url:    "/api/sessions",
			prepareMock: func(m *mocks) {
				m.sessions.EXPECT().ListSessions(gomock.Any()).Return(nil, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "guest joins waitlist",
			method: "POST",
			url:    "/api/sessions/s1/waitlist",
			body:   `{"phone":"+8801712345678"}`,
			prepareMock: func(m *mocks) {
				m.waitlist.EXPECT().JoinWaitlist(gomock.Any(), "s1", gomock.Any()).
					Return(&domain.WaitlistEntry{SessionID: "s1", ContactID: "guest-1", Phone: "+8801712345678"}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "pending payments as admin",
			method: "GET",
			url:    "/api/admin/payments",
			token:  adminToken,
			prepareMock: func(m *mocks) {
				m.payments.EXPECT().GetPendingPayments(gomock.Any()).Return(nil, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "payable as admin",
			method: "GET",
			url:    "/api/admin/mentors/m1/payable",
			token:  adminToken,
			prepareMock: func(m *mocks) {
				m.disbursements.EXPECT().PayableBalance(gomock.Any(), "m1").Return(int64(100), nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "session bookings as admin",
			method: "GET",
			url:    "/api/admin/sessions/s1/bookings",
			token:  adminToken,
			prepareMock: func(m *mocks) {
				m.bookings.EXPECT().GetSessionBookings(gomock.Any(), "s1").Return([]domain.Booking{{ID: "b1", SessionID: "s1"}}, nil)
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t, jwtService)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			req := httptest.NewRequest(tt.method, tt.url, bytes.NewBufferString(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newRouter(t, pkgauth.NewJWTService("secret"))

	req := httptest.NewRequest(http.MethodOptions, "/api/user/balance", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
