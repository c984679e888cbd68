package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/pkg/money"
)

type CreateMentorRequestDTO struct {
	Name string `json:"name" example:"Arif Hossain"`
}

type MentorResponseDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	IsActive      bool    `json:"is_active"`
	TotalSessions int     `json:"total_sessions"`
	RatingAvg     float64 `json:"rating_avg"`
	RatingCount   int     `json:"rating_count"`
}

func NewMentorResponse(m domain.Mentor) MentorResponseDTO {
	return MentorResponseDTO{
		ID:            m.ID,
		Name:          m.Name,
		IsActive:      m.IsActive,
		TotalSessions: m.TotalSessions,
		RatingAvg:     m.RatingAvg,
		RatingCount:   m.RatingCount,
	}
}

type CreateSessionRequestDTO struct {
	MentorID    string          `json:"mentor_id"`
	Title       string          `json:"title" example:"System design mock interview"`
	SessionFee  decimal.Decimal `json:"session_fee" swaggertype:"string" example:"300.00"`
	Capacity    int             `json:"capacity" example:"10"`
	ScheduledAt time.Time       `json:"scheduled_at" example:"2024-06-01T15:00:00Z"`
}

type SessionResponseDTO struct {
	ID          string    `json:"id"`
	MentorID    string    `json:"mentor_id"`
	Title       string    `json:"title"`
	SessionFee  string    `json:"session_fee" example:"300.00"`
	Capacity    int       `json:"capacity" example:"10"`
	BookedCount int       `json:"booked_count" example:"3"`
	SeatsLeft   int       `json:"seats_left" example:"7"`
	Status      string    `json:"status" example:"scheduled"`
	ScheduledAt time.Time `json:"scheduled_at" example:"2024-06-01T15:00:00Z"`
}

func NewSessionResponse(s domain.Session) SessionResponseDTO {
	return SessionResponseDTO{
		ID:          s.ID,
		MentorID:    s.MentorID,
		Title:       s.Title,
		SessionFee:  money.Format(s.SessionFee),
		Capacity:    s.Capacity,
		BookedCount: s.BookedCount(),
		SeatsLeft:   s.SeatsLeft(),
		Status:      string(s.Status),
		ScheduledAt: s.ScheduledAt,
	}
}
