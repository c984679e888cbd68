package dto

import (
	"time"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/pkg/money"
)

type BalanceResponseDTO struct {
	Balance string `json:"balance" example:"700.00"`
}

type TransactionResponseDTO struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount" example:"-300.00"`
	Source      string    `json:"source" example:"session_payment"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

func NewTransactionResponse(t domain.BalanceTransaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID,
		Amount:      money.Format(t.Amount),
		Source:      string(t.Source),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
