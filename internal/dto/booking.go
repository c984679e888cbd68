package dto

import (
	"time"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/pkg/money"
)

type BookingResponseDTO struct {
	ID                 string    `json:"id"`
	SessionID          string    `json:"session_id"`
	MentorID           string    `json:"mentor_id"`
	MenteeID           string    `json:"mentee_id"`
	SessionFee         string    `json:"session_fee" example:"300.00"`
	Status             string    `json:"status" example:"confirmed"`
	DisbursementStatus string    `json:"disbursement_status" example:"pending"`
	BookingTime        time.Time `json:"booking_time" example:"2024-05-01T10:00:00Z"`
}

func NewBookingResponse(b domain.Booking) BookingResponseDTO {
	return BookingResponseDTO{
		ID:                 b.ID,
		SessionID:          b.SessionID,
		MentorID:           b.MentorID,
		MenteeID:           b.MenteeID,
		SessionFee:         money.Format(b.SessionFee),
		Status:             string(b.Status),
		DisbursementStatus: string(b.AdminDisbursementStatus),
		BookingTime:        b.BookingTime,
	}
}

func NewBookingsResponse(bookings []domain.Booking) []BookingResponseDTO {
	response := make([]BookingResponseDTO, len(bookings))
	for i, b := range bookings {
		response[i] = NewBookingResponse(b)
	}
	return response
}
