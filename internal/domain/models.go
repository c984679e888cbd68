package domain

import (
	"slices"
	"time"
)

type Mentee struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Balance      int64     `db:"balance"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

// Mentor carries no balance: what a mentor is owed is always derived from
// completed bookings minus disbursements.
type Mentor struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	IsActive      bool      `db:"is_active"`
	TotalSessions int       `db:"total_sessions"`
	RatingAvg     float64   `db:"rating_avg"`
	RatingCount   int       `db:"rating_count"`
	CreatedAt     time.Time `db:"created_at"`
}

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

type Session struct {
	ID          string        `db:"id"`
	MentorID    string        `db:"mentor_id"`
	Title       string        `db:"title"`
	SessionFee  int64         `db:"session_fee"`
	Capacity    int           `db:"capacity"`
	BookedBy    []string      `db:"booked_by"`
	Status      SessionStatus `db:"status"`
	ScheduledAt time.Time     `db:"scheduled_at"`
	CreatedAt   time.Time     `db:"created_at"`
}

func (s *Session) BookedCount() int {
	return len(s.BookedBy)
}

func (s *Session) IsFull() bool {
	return len(s.BookedBy) >= s.Capacity
}

func (s *Session) HasBooked(menteeID string) bool {
	return slices.Contains(s.BookedBy, menteeID)
}

func (s *Session) SeatsLeft() int {
	if left := s.Capacity - len(s.BookedBy); left > 0 {
		return left
	}
	return 0
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingStarted   BookingStatus = "started"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingStarted, BookingCancelled},
	BookingStarted:   {BookingCompleted, BookingCancelled},
}

// CanTransition reports whether a booking may move from one status to another.
// Completed and cancelled are terminal.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	return slices.Contains(bookingTransitions[s], to)
}

type DisbursementStatus string

const (
	DisbursementPending DisbursementStatus = "pending"
	DisbursementPaid    DisbursementStatus = "paid"
)

type Booking struct {
	ID                      string             `db:"id"`
	SessionID               string             `db:"session_id"`
	MentorID                string             `db:"mentor_id"`
	MenteeID                string             `db:"mentee_id"`
	SessionFee              int64              `db:"session_fee"`
	Status                  BookingStatus      `db:"status"`
	BookingTime             time.Time          `db:"booking_time"`
	AdminDisbursementStatus DisbursementStatus `db:"disbursement_status"`
	UpdatedAt               time.Time          `db:"updated_at"`
}

// Reviewable reports whether the mentee may leave a review for the booking.
func (b *Booking) Reviewable() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}

// Disbursable reports whether the booking's fee may be covered by a payout.
func (b *Booking) Disbursable() bool {
	return b.Status == BookingCompleted && b.AdminDisbursementStatus != DisbursementPaid
}

type TransactionSource string

const (
	SourceCoupon         TransactionSource = "coupon"
	SourceBkash          TransactionSource = "bkash"
	SourceSessionPayment TransactionSource = "session_payment"
	SourceDisbursement   TransactionSource = "disbursement"
	SourceRefund         TransactionSource = "refund"
)

// BalanceTransaction is an append-only ledger entry. Positive amounts are
// credits, negative amounts debits.
type BalanceTransaction struct {
	ID          string            `db:"id"`
	UserID      string            `db:"user_id"`
	Amount      int64             `db:"amount"`
	Source      TransactionSource `db:"source"`
	Description string            `db:"description"`
	CreatedAt   time.Time         `db:"created_at"`
}

type PendingPayment struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	TransactionID string    `db:"transaction_id"`
	Amount        int64     `db:"amount"`
	CreatedAt     time.Time `db:"created_at"`
}

type Coupon struct {
	Code      string     `db:"code"`
	Amount    int64      `db:"amount"`
	ExpiresAt time.Time  `db:"expires_at"`
	IsUsed    bool       `db:"is_used"`
	UsedBy    string     `db:"used_by"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

func (c *Coupon) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

type Disbursement struct {
	ID          string             `db:"id"`
	MentorID    string             `db:"mentor_id"`
	TotalAmount int64              `db:"total_amount"`
	Status      DisbursementStatus `db:"status"`
	BookingIDs  []string           `db:"booking_ids"`
	Note        string             `db:"note"`
	CreatedAt   time.Time          `db:"created_at"`
	PaidAt      *time.Time         `db:"paid_at"`
	AdminID     string             `db:"admin_id"`
}

// WaitlistEntry is keyed by ContactID, which is the mentee id for signed-in
// users and a generated guest id otherwise.
type WaitlistEntry struct {
	SessionID string    `db:"session_id"`
	ContactID string    `db:"contact_id"`
	MenteeID  string    `db:"mentee_id"`
	Phone     string    `db:"phone"`
	JoinedAt  time.Time `db:"joined_at"`
}

func (e *WaitlistEntry) IsGuest() bool {
	return e.MenteeID == ""
}
