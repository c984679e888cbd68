package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/mentorhub/docs"
	authhandlers "github.com/GlebRadaev/mentorhub/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/mentorhub/internal/handlers/balance"
	bookinghandlers "github.com/GlebRadaev/mentorhub/internal/handlers/bookings"
	couponhandlers "github.com/GlebRadaev/mentorhub/internal/handlers/coupons"
	disbursementhandlers "github.com/GlebRadaev/mentorhub/internal/handlers/disbursements"
	paymenthandlers "github.com/GlebRadaev/mentorhub/internal/handlers/payments"
	sessionhandlers "github.com/GlebRadaev/mentorhub/internal/handlers/sessions"
	waitlisthandlers "github.com/GlebRadaev/mentorhub/internal/handlers/waitlist"
	"github.com/GlebRadaev/mentorhub/internal/service"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	BookSession(w http.ResponseWriter, r *http.Request)
	CancelBooking(w http.ResponseWriter, r *http.Request)
	AdminCancelBooking(w http.ResponseWriter, r *http.Request)
	GetBookings(w http.ResponseWriter, r *http.Request)
	GetSessionBookings(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	ListSessions(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	CreateMentor(w http.ResponseWriter, r *http.Request)
	GetMentor(w http.ResponseWriter, r *http.Request)
	CreateSession(w http.ResponseWriter, r *http.Request)
	StartSession(w http.ResponseWriter, r *http.Request)
	CompleteSession(w http.ResponseWriter, r *http.Request)
}

type WaitlistHandler interface {
	JoinWaitlist(w http.ResponseWriter, r *http.Request)
	GetWaitlist(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	SubmitPayment(w http.ResponseWriter, r *http.Request)
	GetPendingPayments(w http.ResponseWriter, r *http.Request)
	ApprovePayment(w http.ResponseWriter, r *http.Request)
	RejectPayment(w http.ResponseWriter, r *http.Request)
}

type CouponHandler interface {
	RedeemCoupon(w http.ResponseWriter, r *http.Request)
	CreateCoupon(w http.ResponseWriter, r *http.Request)
}

type DisbursementHandler interface {
	GetPayable(w http.ResponseWriter, r *http.Request)
	CreateDisbursement(w http.ResponseWriter, r *http.Request)
	GetDisbursements(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	BalanceHandler      BalanceHandler
	BookingHandler      BookingHandler
	SessionHandler      SessionHandler
	WaitlistHandler     WaitlistHandler
	PaymentHandler      PaymentHandler
	CouponHandler       CouponHandler
	DisbursementHandler DisbursementHandler

	middleware     *auth.Middleware
	allowedOrigins []string
}

func New(s *service.Services, mw *auth.Middleware, allowedOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		BalanceHandler:      balancehandlers.New(s.BalanceService),
		BookingHandler:      bookinghandlers.New(s.BookingService),
		SessionHandler:      sessionhandlers.New(s.SessionService),
		WaitlistHandler:     waitlisthandlers.New(s.WaitlistService),
		PaymentHandler:      paymenthandlers.New(s.PaymentService),
		CouponHandler:       couponhandlers.New(s.CouponService),
		DisbursementHandler: disbursementhandlers.New(s.DisbursementService),
		middleware:          mw,
		allowedOrigins:      allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if len(h.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
		}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.middleware.Required)
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/transactions", h.BalanceHandler.GetTransactions)
			r.Post("/coupons/redeem", h.CouponHandler.RedeemCoupon)
			r.Post("/payments", h.PaymentHandler.SubmitPayment)
			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", h.BookingHandler.GetBookings)
				r.Post("/{id}/cancel", h.BookingHandler.CancelBooking)
			})
		})
	})

	r.Route("/api/sessions", func(r chi.Router) {
		r.Get("/", h.SessionHandler.ListSessions)
		r.Get("/{id}", h.SessionHandler.GetSession)
		r.With(h.middleware.Optional).Post("/{id}/waitlist", h.WaitlistHandler.JoinWaitlist)
		r.With(h.middleware.Required).Post("/{id}/book", h.BookingHandler.BookSession)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(h.middleware.Required, h.middleware.Admin)

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.PaymentHandler.GetPendingPayments)
			r.Post("/{id}/approve", h.PaymentHandler.ApprovePayment)
			r.Post("/{id}/reject", h.PaymentHandler.RejectPayment)
		})
		r.Post("/coupons", h.CouponHandler.CreateCoupon)
		r.Route("/mentors", func(r chi.Router) {
			r.Post("/", h.SessionHandler.CreateMentor)
			r.Get("/{id}", h.SessionHandler.GetMentor)
			r.Get("/{id}/payable", h.DisbursementHandler.GetPayable)
			r.Post("/{id}/disbursements", h.DisbursementHandler.CreateDisbursement)
			r.Get("/{id}/disbursements", h.DisbursementHandler.GetDisbursements)
		})
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.SessionHandler.CreateSession)
			r.Post("/{id}/start", h.SessionHandler.StartSession)
			r.Post("/{id}/complete", h.SessionHandler.CompleteSession)
			r.Get("/{id}/waitlist", h.WaitlistHandler.GetWaitlist)
			r.Get("/{id}/bookings", h.BookingHandler.GetSessionBookings)
		})
		r.Post("/bookings/{id}/cancel", h.BookingHandler.AdminCancelBooking)
	})

	return r
}
