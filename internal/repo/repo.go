package repo

import (
	"github.com/GlebRadaev/mentorhub/internal/pg"
	bookingrepo "github.com/GlebRadaev/mentorhub/internal/repo/booking-repo"
	couponrepo "github.com/GlebRadaev/mentorhub/internal/repo/coupon-repo"
	disbursementrepo "github.com/GlebRadaev/mentorhub/internal/repo/disbursement-repo"
	"github.com/GlebRadaev/mentorhub/internal/repo/memstore"
	menteerepo "github.com/GlebRadaev/mentorhub/internal/repo/mentee-repo"
	mentorrepo "github.com/GlebRadaev/mentorhub/internal/repo/mentor-repo"
	paymentrepo "github.com/GlebRadaev/mentorhub/internal/repo/payment-repo"
	sessionrepo "github.com/GlebRadaev/mentorhub/internal/repo/session-repo"
	transactionrepo "github.com/GlebRadaev/mentorhub/internal/repo/transaction-repo"
	waitlistrepo "github.com/GlebRadaev/mentorhub/internal/repo/waitlist-repo"
	"github.com/GlebRadaev/mentorhub/internal/service/authservice"
	"github.com/GlebRadaev/mentorhub/internal/service/bookingservice"
	"github.com/GlebRadaev/mentorhub/internal/service/couponservice"
	"github.com/GlebRadaev/mentorhub/internal/service/disbursementservice"
	"github.com/GlebRadaev/mentorhub/internal/service/ledgerservice"
	"github.com/GlebRadaev/mentorhub/internal/service/paymentservice"
	"github.com/GlebRadaev/mentorhub/internal/service/sessionservice"
	"github.com/GlebRadaev/mentorhub/internal/service/waitlistservice"
)

type MenteeRepo interface {
	authservice.Repo
	ledgerservice.MenteeRepo
}

type MentorRepo interface {
	sessionservice.MentorRepo
	disbursementservice.MentorRepo
}

type SessionRepo interface {
	bookingservice.SessionRepo
	sessionservice.SessionRepo
}

type BookingRepo interface {
	bookingservice.BookingRepo
	sessionservice.BookingRepo
	disbursementservice.BookingRepo
}

type Repositories struct {
	MenteeRepo       MenteeRepo
	MentorRepo       MentorRepo
	SessionRepo      SessionRepo
	BookingRepo      BookingRepo
	TransactionRepo  ledgerservice.TransactionRepo
	PaymentRepo      paymentservice.PaymentRepo
	CouponRepo       couponservice.CouponRepo
	DisbursementRepo disbursementservice.DisbursementRepo
	WaitlistRepo     waitlistservice.WaitlistRepo
	TxManager        pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		MenteeRepo:       menteerepo.New(conn),
		MentorRepo:       mentorrepo.New(conn),
		SessionRepo:      sessionrepo.New(conn),
		BookingRepo:      bookingrepo.New(conn),
		TransactionRepo:  transactionrepo.New(conn),
		PaymentRepo:      paymentrepo.New(conn),
		CouponRepo:       couponrepo.New(conn),
		DisbursementRepo: disbursementrepo.New(conn),
		WaitlistRepo:     waitlistrepo.New(conn),
		TxManager:        txManager,
	}
}

// NewInMemory backs every repository with the same store, which also acts as
// the transaction manager.
func NewInMemory(store *memstore.Store) *Repositories {
	return &Repositories{
		MenteeRepo:       store.Mentees(),
		MentorRepo:       store.Mentors(),
		SessionRepo:      store.Sessions(),
		BookingRepo:      store.Bookings(),
		TransactionRepo:  store.Transactions(),
		PaymentRepo:      store.Payments(),
		CouponRepo:       store.Coupons(),
		DisbursementRepo: store.Disbursements(),
		WaitlistRepo:     store.Waitlist(),
		TxManager:        store,
	}
}
