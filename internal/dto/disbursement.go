package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/pkg/money"
)

type PayableResponseDTO struct {
	MentorID string `json:"mentor_id"`
	Payable  string `json:"payable" example:"300.00"`
}

type CreateDisbursementRequestDTO struct {
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"300.00"`
	BookingIDs []string        `json:"booking_ids"`
	Note       string          `json:"note" example:"May payout"`
}

type DisbursementResponseDTO struct {
	ID          string     `json:"id"`
	MentorID    string     `json:"mentor_id"`
	TotalAmount string     `json:"total_amount" example:"300.00"`
	Status      string     `json:"status" example:"paid"`
	BookingIDs  []string   `json:"booking_ids"`
	Note        string     `json:"note,omitempty"`
	AdminID     string     `json:"admin_id"`
	CreatedAt   time.Time  `json:"created_at" example:"2024-05-01T10:00:00Z"`
	PaidAt      *time.Time `json:"paid_at,omitempty" example:"2024-05-01T10:00:00Z"`
}

func NewDisbursementResponse(d domain.Disbursement) DisbursementResponseDTO {
	bookingIDs := d.BookingIDs
	if bookingIDs == nil {
		bookingIDs = []string{}
	}
	return DisbursementResponseDTO{
		ID:          d.ID,
		MentorID:    d.MentorID,
		TotalAmount: money.Format(d.TotalAmount),
		Status:      string(d.Status),
		BookingIDs:  bookingIDs,
		Note:        d.Note,
		AdminID:     d.AdminID,
		CreatedAt:   d.CreatedAt,
		PaidAt:      d.PaidAt,
	}
}
