package service

import (
	"context"
	"time"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/handlers/auth"
	"github.com/GlebRadaev/mentorhub/internal/handlers/balance"
	"github.com/GlebRadaev/mentorhub/internal/handlers/bookings"
	"github.com/GlebRadaev/mentorhub/internal/handlers/coupons"
	"github.com/GlebRadaev/mentorhub/internal/handlers/disbursements"
	"github.com/GlebRadaev/mentorhub/internal/handlers/payments"
	"github.com/GlebRadaev/mentorhub/internal/handlers/sessions"
	"github.com/GlebRadaev/mentorhub/internal/handlers/waitlist"

	pkgauth "github.com/GlebRadaev/mentorhub/pkg/auth"

	"github.com/GlebRadaev/mentorhub/internal/repo"
	"github.com/GlebRadaev/mentorhub/internal/service/authservice"
	"github.com/GlebRadaev/mentorhub/internal/service/bookingservice"
	"github.com/GlebRadaev/mentorhub/internal/service/couponservice"
	"github.com/GlebRadaev/mentorhub/internal/service/disbursementservice"
	"github.com/GlebRadaev/mentorhub/internal/service/ledgerservice"
	"github.com/GlebRadaev/mentorhub/internal/service/paymentservice"
	"github.com/GlebRadaev/mentorhub/internal/service/sessionservice"
	"github.com/GlebRadaev/mentorhub/internal/service/waitlistservice"
)

type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

type Options struct {
	AdminEmails []string
	TokenTTL    time.Duration
	HashCost    int
}

type Services struct {
	AuthService         auth.Service
	BalanceService      balance.Service
	BookingService      bookings.Service
	SessionService      sessions.Service
	WaitlistService     waitlist.Service
	PaymentService      payments.Service
	CouponService       coupons.Service
	DisbursementService disbursements.Service
}

func New(repo *repo.Repositories, notifier Notifier, jwtService pkgauth.JWTServiceInterface, opts Options) *Services {
	ledgerService := ledgerservice.New(repo.MenteeRepo, repo.TransactionRepo, repo.TxManager)
	authService := authservice.New(repo.MenteeRepo, pkgauth.NewHashService(opts.HashCost), jwtService, opts.AdminEmails, opts.TokenTTL)

	return &Services{
		AuthService:     authService,
		BalanceService:  ledgerService,
		BookingService:  bookingservice.New(repo.SessionRepo, repo.BookingRepo, repo.MenteeRepo, ledgerService, repo.TxManager, notifier),
		SessionService:  sessionservice.New(repo.MentorRepo, repo.SessionRepo, repo.BookingRepo, repo.TxManager),
		WaitlistService: waitlistservice.New(repo.SessionRepo, repo.WaitlistRepo, notifier),
		PaymentService:  paymentservice.New(repo.PaymentRepo, repo.MenteeRepo, ledgerService, repo.TxManager, notifier),
		CouponService:   couponservice.New(repo.CouponRepo, ledgerService, repo.TxManager, notifier),
		DisbursementService: disbursementservice.New(
			repo.MentorRepo,
			repo.BookingRepo,
			repo.DisbursementRepo,
			repo.TransactionRepo,
			repo.TxManager,
			notifier,
		),
	}
}
