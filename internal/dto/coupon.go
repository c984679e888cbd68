package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/pkg/money"
)

type RedeemCouponRequestDTO struct {
	Code string `json:"code" example:"SAVE500"`
}

type RedeemCouponResponseDTO struct {
	Credited string `json:"credited" example:"500.00"`
}

type CreateCouponRequestDTO struct {
	Code      string          `json:"code" example:"SAVE500"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"500.00"`
	ExpiresAt time.Time       `json:"expires_at" example:"2024-12-31T23:59:59Z"`
}

type CouponResponseDTO struct {
	Code      string    `json:"code" example:"SAVE500"`
	Amount    string    `json:"amount" example:"500.00"`
	ExpiresAt time.Time `json:"expires_at" example:"2024-12-31T23:59:59Z"`
	IsUsed    bool      `json:"is_used"`
}

func NewCouponResponse(c domain.Coupon) CouponResponseDTO {
	return CouponResponseDTO{
		Code:      c.Code,
		Amount:    money.Format(c.Amount),
		ExpiresAt: c.ExpiresAt,
		IsUsed:    c.IsUsed,
	}
}
