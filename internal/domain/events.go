package domain

import "time"

type EventType string

const (
	EventBookingConfirmed     EventType = "booking_confirmed"
	EventBookingCancelled     EventType = "booking_cancelled"
	EventWaitlistJoined       EventType = "waitlist_joined"
	EventPaymentApproved      EventType = "payment_approved"
	EventCouponRedeemed       EventType = "coupon_redeemed"
	EventDisbursementRecorded EventType = "disbursement_recorded"
)

// Event is handed to the notification collaborator once an operation has
// committed.
type Event struct {
	Type        EventType `json:"type"`
	UserID      string    `json:"user_id,omitempty"`
	SessionID   string    `json:"session_id,omitempty"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Amount      int64     `json:"amount,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
