package memstore

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/GlebRadaev/mentorhub/internal/domain"
)

type MenteeRepo struct{ s *Store }

func (r *MenteeRepo) Create(ctx context.Context, mentee *domain.Mentee) (*domain.Mentee, error) {
	defer r.s.acquire(ctx)()
	for _, m := range r.s.data.mentees {
		if m.Email == mentee.Email {
			return nil, uniqueViolation("mentees_email_key")
		}
	}
	if _, ok := r.s.data.mentees[mentee.ID]; ok {
		return nil, uniqueViolation("mentees_pkey")
	}
	r.s.data.mentees[mentee.ID] = *mentee
	return mentee, nil
}

func (r *MenteeRepo) FindByID(ctx context.Context, id string) (*domain.Mentee, error) {
	defer r.s.acquire(ctx)()
	m, ok := r.s.data.mentees[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MenteeRepo) FindByIDForUpdate(ctx context.Context, id string) (*domain.Mentee, error) {
	return r.FindByID(ctx, id)
}

func (r *MenteeRepo) FindByEmail(ctx context.Context, email string) (*domain.Mentee, error) {
	defer r.s.acquire(ctx)()
	for _, m := range r.s.data.mentees {
		if m.Email == email {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *MenteeRepo) UpdateBalance(ctx context.Context, id string, balance int64) error {
	defer r.s.acquire(ctx)()
	m, ok := r.s.data.mentees[id]
	if !ok {
		return nil
	}
	m.Balance = balance
	r.s.data.mentees[id] = m
	return nil
}

type MentorRepo struct{ s *Store }

func (r *MentorRepo) Create(ctx context.Context, mentor *domain.Mentor) (*domain.Mentor, error) {
	defer r.s.acquire(ctx)()
	if _, ok := r.s.data.mentors[mentor.ID]; ok {
		return nil, uniqueViolation("mentors_pkey")
	}
	r.s.data.mentors[mentor.ID] = *mentor
	return mentor, nil
}

func (r *MentorRepo) FindByID(ctx context.Context, id string) (*domain.Mentor, error) {
	defer r.s.acquire(ctx)()
	m, ok := r.s.data.mentors[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MentorRepo) FindByIDForUpdate(ctx context.Context, id string) (*domain.Mentor, error) {
	return r.FindByID(ctx, id)
}

func (r *MentorRepo) IncrementTotalSessions(ctx context.Context, id string, n int) error {
	defer r.s.acquire(ctx)()
	m, ok := r.s.data.mentors[id]
	if !ok {
		return nil
	}
	m.TotalSessions += n
	r.s.data.mentors[id] = m
	return nil
}

type SessionRepo struct{ s *Store }

func (r *SessionRepo) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	defer r.s.acquire(ctx)()
	if _, ok := r.s.data.sessions[session.ID]; ok {
		return nil, uniqueViolation("sessions_pkey")
	}
	stored := *session
	stored.BookedBy = slices.Clone(session.BookedBy)
	if stored.BookedBy == nil {
		stored.BookedBy = []string{}
	}
	r.s.data.sessions[session.ID] = stored
	return session, nil
}

func (r *SessionRepo) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	defer r.s.acquire(ctx)()
	s, ok := r.s.data.sessions[id]
	if !ok {
		return nil, nil
	}
	s.BookedBy = slices.Clone(s.BookedBy)
	return &s, nil
}

func (r *SessionRepo) FindByIDForUpdate(ctx context.Context, id string) (*domain.Session, error) {
	return r.FindByID(ctx, id)
}

func (r *SessionRepo) FindScheduled(ctx context.Context) ([]domain.Session, error) {
	defer r.s.acquire(ctx)()
	var sessions []domain.Session
	for _, s := range r.s.data.sessions {
		if s.Status == domain.SessionScheduled {
			s.BookedBy = slices.Clone(s.BookedBy)
			sessions = append(sessions, s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ScheduledAt.Before(sessions[j].ScheduledAt)
	})
	return sessions, nil
}

func (r *SessionRepo) AddBookedMentee(ctx context.Context, sessionID, menteeID string) error {
	defer r.s.acquire(ctx)()
	s, ok := r.s.data.sessions[sessionID]
	if !ok {
		return nil
	}
	s.BookedBy = append(slices.Clone(s.BookedBy), menteeID)
	r.s.data.sessions[sessionID] = s
	return nil
}

func (r *SessionRepo) RemoveBookedMentee(ctx context.Context, sessionID, menteeID string) error {
	defer r.s.acquire(ctx)()
	s, ok := r.s.data.sessions[sessionID]
	if !ok {
		return nil
	}
	s.BookedBy = slices.DeleteFunc(slices.Clone(s.BookedBy), func(id string) bool { return id == menteeID })
	r.s.data.sessions[sessionID] = s
	return nil
}

func (r *SessionRepo) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error {
	defer r.s.acquire(ctx)()
	s, ok := r.s.data.sessions[id]
	if !ok {
		return nil
	}
	s.Status = status
	r.s.data.sessions[id] = s
	return nil
}

type BookingRepo struct{ s *Store }

func (r *BookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	defer r.s.acquire(ctx)()
	for _, b := range r.s.data.bookings {
		if b.SessionID == booking.SessionID && b.MenteeID == booking.MenteeID {
			return uniqueViolation("bookings_session_mentee_uidx")
		}
	}
	r.s.data.bookings[booking.ID] = *booking
	return nil
}

func (r *BookingRepo) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	defer r.s.acquire(ctx)()
	b, ok := r.s.data.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *BookingRepo) FindByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r *BookingRepo) FindByIDsForUpdate(ctx context.Context, ids []string) ([]domain.Booking, error) {
	defer r.s.acquire(ctx)()
	var bookings []domain.Booking
	for _, id := range ids {
		if b, ok := r.s.data.bookings[id]; ok {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (r *BookingRepo) FindByMenteeID(ctx context.Context, menteeID string) ([]domain.Booking, error) {
	return r.filter(ctx, func(b domain.Booking) bool { return b.MenteeID == menteeID })
}

func (r *BookingRepo) FindBySessionID(ctx context.Context, sessionID string) ([]domain.Booking, error) {
	return r.filter(ctx, func(b domain.Booking) bool { return b.SessionID == sessionID })
}

func (r *BookingRepo) filter(ctx context.Context, keep func(domain.Booking) bool) ([]domain.Booking, error) {
	defer r.s.acquire(ctx)()
	var bookings []domain.Booking
	for _, b := range r.s.data.bookings {
		if keep(b) {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingTime.After(bookings[j].BookingTime)
	})
	return bookings, nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	defer r.s.acquire(ctx)()
	b, ok := r.s.data.bookings[id]
	if !ok {
		return nil
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	r.s.data.bookings[id] = b
	return nil
}

func (r *BookingRepo) MarkDisbursed(ctx context.Context, ids []string) error {
	defer r.s.acquire(ctx)()
	for _, id := range ids {
		if b, ok := r.s.data.bookings[id]; ok {
			b.AdminDisbursementStatus = domain.DisbursementPaid
			b.UpdatedAt = time.Now()
			r.s.data.bookings[id] = b
		}
	}
	return nil
}

func (r *BookingRepo) SumCompletedFees(ctx context.Context, mentorID string) (int64, error) {
	defer r.s.acquire(ctx)()
	var total int64
	for _, b := range r.s.data.bookings {
		if b.MentorID == mentorID && b.Status == domain.BookingCompleted {
			total += b.SessionFee
		}
	}
	return total, nil
}

type TransactionRepo struct{ s *Store }

func (r *TransactionRepo) Create(ctx context.Context, transaction *domain.BalanceTransaction) error {
	defer r.s.acquire(ctx)()
	r.s.data.transactions = append(r.s.data.transactions, *transaction)
	return nil
}

func (r *TransactionRepo) FindByUserID(ctx context.Context, userID string) ([]domain.BalanceTransaction, error) {
	defer r.s.acquire(ctx)()
	var transactions []domain.BalanceTransaction
	for i := len(r.s.data.transactions) - 1; i >= 0; i-- {
		if t := r.s.data.transactions[i]; t.UserID == userID {
			transactions = append(transactions, t)
		}
	}
	return transactions, nil
}

type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) Create(ctx context.Context, payment *domain.PendingPayment) error {
	defer r.s.acquire(ctx)()
	for _, p := range r.s.data.payments {
		if p.TransactionID == payment.TransactionID {
			return uniqueViolation("pending_payments_transaction_id_key")
		}
	}
	r.s.data.payments[payment.ID] = *payment
	return nil
}

func (r *PaymentRepo) FindByIDForUpdate(ctx context.Context, id string) (*domain.PendingPayment, error) {
	defer r.s.acquire(ctx)()
	p, ok := r.s.data.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PaymentRepo) FindAll(ctx context.Context) ([]domain.PendingPayment, error) {
	defer r.s.acquire(ctx)()
	payments := make([]domain.PendingPayment, 0, len(r.s.data.payments))
	for _, p := range r.s.data.payments {
		payments = append(payments, p)
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})
	return payments, nil
}

func (r *PaymentRepo) Delete(ctx context.Context, id string) error {
	defer r.s.acquire(ctx)()
	delete(r.s.data.payments, id)
	return nil
}

type CouponRepo struct{ s *Store }

func (r *CouponRepo) Create(ctx context.Context, coupon *domain.Coupon) error {
	defer r.s.acquire(ctx)()
	if _, ok := r.s.data.coupons[coupon.Code]; ok {
		return uniqueViolation("coupons_pkey")
	}
	r.s.data.coupons[coupon.Code] = *coupon
	return nil
}

func (r *CouponRepo) FindByCodeForUpdate(ctx context.Context, code string) (*domain.Coupon, error) {
	defer r.s.acquire(ctx)()
	c, ok := r.s.data.coupons[code]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CouponRepo) MarkUsed(ctx context.Context, code, userID string, at time.Time) error {
	defer r.s.acquire(ctx)()
	c, ok := r.s.data.coupons[code]
	if !ok {
		return nil
	}
	c.IsUsed = true
	c.UsedBy = userID
	c.UsedAt = &at
	r.s.data.coupons[code] = c
	return nil
}

type DisbursementRepo struct{ s *Store }

func (r *DisbursementRepo) Create(ctx context.Context, disbursement *domain.Disbursement) error {
	defer r.s.acquire(ctx)()
	d := *disbursement
	d.BookingIDs = slices.Clone(disbursement.BookingIDs)
	r.s.data.disbursements = append(r.s.data.disbursements, d)
	return nil
}

func (r *DisbursementRepo) FindByMentorID(ctx context.Context, mentorID string) ([]domain.Disbursement, error) {
	defer r.s.acquire(ctx)()
	var disbursements []domain.Disbursement
	for i := len(r.s.data.disbursements) - 1; i >= 0; i-- {
		if d := r.s.data.disbursements[i]; d.MentorID == mentorID {
			d.BookingIDs = slices.Clone(d.BookingIDs)
			disbursements = append(disbursements, d)
		}
	}
	return disbursements, nil
}

func (r *DisbursementRepo) SumByMentorID(ctx context.Context, mentorID string) (int64, error) {
	defer r.s.acquire(ctx)()
	var total int64
	for _, d := range r.s.data.disbursements {
		if d.MentorID == mentorID {
			total += d.TotalAmount
		}
	}
	return total, nil
}

type WaitlistRepo struct{ s *Store }

func (r *WaitlistRepo) Add(ctx context.Context, entry *domain.WaitlistEntry) (bool, error) {
	defer r.s.acquire(ctx)()
	for _, e := range r.s.data.waitlist {
		if e.SessionID == entry.SessionID && e.ContactID == entry.ContactID {
			*entry = e
			return false, nil
		}
	}
	r.s.data.waitlist = append(r.s.data.waitlist, *entry)
	return true, nil
}

func (r *WaitlistRepo) FindBySessionID(ctx context.Context, sessionID string) ([]domain.WaitlistEntry, error) {
	defer r.s.acquire(ctx)()
	var entries []domain.WaitlistEntry
	for _, e := range r.s.data.waitlist {
		if e.SessionID == sessionID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
