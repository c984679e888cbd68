package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/pkg/money"
)

type SubmitPaymentRequestDTO struct {
	TransactionID string          `json:"transaction_id" example:"8N7A6D5F4G"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"800.00"`
}

type PendingPaymentResponseDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	TransactionID string    `json:"transaction_id" example:"8N7A6D5F4G"`
	Amount        string    `json:"amount" example:"800.00"`
	CreatedAt     time.Time `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

func NewPendingPaymentResponse(p domain.PendingPayment) PendingPaymentResponseDTO {
	return PendingPaymentResponseDTO{
		ID:            p.ID,
		UserID:        p.UserID,
		TransactionID: p.TransactionID,
		Amount:        money.Format(p.Amount),
		CreatedAt:     p.CreatedAt,
	}
}
