// Package memstore is an in-memory Entity Store with the same contracts as
// the Postgres repositories. Transactions are serialized behind one mutex and
// rolled back by restoring a snapshot, which makes it suitable for local runs
// and for exercising the services without a database.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
)

type txKey struct{}

type Store struct {
	mu   sync.Mutex
	data *state
}

type state struct {
	mentees       map[string]domain.Mentee
	mentors       map[string]domain.Mentor
	sessions      map[string]domain.Session
	bookings      map[string]domain.Booking
	transactions  []domain.BalanceTransaction
	payments      map[string]domain.PendingPayment
	coupons       map[string]domain.Coupon
	disbursements []domain.Disbursement
	waitlist      []domain.WaitlistEntry
}

func New() *Store {
	return &Store{
		data: &state{
			mentees:  make(map[string]domain.Mentee),
			mentors:  make(map[string]domain.Mentor),
			sessions: make(map[string]domain.Session),
			bookings: make(map[string]domain.Booking),
			payments: make(map[string]domain.PendingPayment),
			coupons:  make(map[string]domain.Coupon),
		},
	}
}

// Begin runs fn with the store locked. Any error restores the state captured
// before fn started.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// acquire locks the store unless ctx already runs inside one of its
// transactions.
func (s *Store) acquire(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *state) clone() *state {
	c := &state{
		mentees:       make(map[string]domain.Mentee, len(s.mentees)),
		mentors:       make(map[string]domain.Mentor, len(s.mentors)),
		sessions:      make(map[string]domain.Session, len(s.sessions)),
		bookings:      make(map[string]domain.Booking, len(s.bookings)),
		transactions:  slices.Clone(s.transactions),
		payments:      make(map[string]domain.PendingPayment, len(s.payments)),
		coupons:       make(map[string]domain.Coupon, len(s.coupons)),
		disbursements: make([]domain.Disbursement, 0, len(s.disbursements)),
		waitlist:      slices.Clone(s.waitlist),
	}
	for k, v := range s.mentees {
		c.mentees[k] = v
	}
	for k, v := range s.mentors {
		c.mentors[k] = v
	}
	for k, v := range s.sessions {
		v.BookedBy = slices.Clone(v.BookedBy)
		c.sessions[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.coupons {
		c.coupons[k] = v
	}
	for _, d := range s.disbursements {
		d.BookingIDs = slices.Clone(d.BookingIDs)
		c.disbursements = append(c.disbursements, d)
	}
	return c
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Code:           "23505",
		Message:        fmt.Sprintf("duplicate key value violates unique constraint %q", constraint),
		ConstraintName: constraint,
	}
}

func (s *Store) Mentees() *MenteeRepo             { return &MenteeRepo{s: s} }
func (s *Store) Mentors() *MentorRepo             { return &MentorRepo{s: s} }
func (s *Store) Sessions() *SessionRepo           { return &SessionRepo{s: s} }
func (s *Store) Bookings() *BookingRepo           { return &BookingRepo{s: s} }
func (s *Store) Transactions() *TransactionRepo   { return &TransactionRepo{s: s} }
func (s *Store) Payments() *PaymentRepo           { return &PaymentRepo{s: s} }
func (s *Store) Coupons() *CouponRepo             { return &CouponRepo{s: s} }
func (s *Store) Disbursements() *DisbursementRepo { return &DisbursementRepo{s: s} }
func (s *Store) Waitlist() *WaitlistRepo          { return &WaitlistRepo{s: s} }
