package dto

import (
	"time"

	"github.com/GlebRadaev/mentorhub/internal/domain"
)

type JoinWaitlistRequestDTO struct {
	Phone string `json:"phone" example:"+8801712345678"`
}

type WaitlistEntryResponseDTO struct {
	SessionID string    `json:"session_id"`
	ContactID string    `json:"contact_id"`
	Phone     string    `json:"phone" example:"+8801712345678"`
	Guest     bool      `json:"guest"`
	JoinedAt  time.Time `json:"joined_at" example:"2024-05-01T10:00:00Z"`
}

func NewWaitlistEntryResponse(e domain.WaitlistEntry) WaitlistEntryResponseDTO {
	return WaitlistEntryResponseDTO{
		SessionID: e.SessionID,
		ContactID: e.ContactID,
		Phone:     e.Phone,
		Guest:     e.IsGuest(),
		JoinedAt:  e.JoinedAt,
	}
}
