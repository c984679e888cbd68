package sessionservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
)

//go:generate mockgen -source=sessionservice.go -destination=mock_sessionservice.go -package=sessionservice

type MentorRepo interface {
	Create(ctx context.Context, mentor *domain.Mentor) (*domain.Mentor, error)
	FindByID(ctx context.Context, id string) (*domain.Mentor, error)
	IncrementTotalSessions(ctx context.Context, id string, n int) error
}

type SessionRepo interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Session, error)
	FindScheduled(ctx context.Context) ([]domain.Session, error)
	UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error
}

type BookingRepo interface {
	FindBySessionID(ctx context.Context, sessionID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

var (
	ErrMentorNotFound  = errors.New("mentor not found")
	ErrMentorInactive  = errors.New("mentor is not active")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("session requires a title, a non-negative fee and a positive capacity")
	ErrInvalidMentor   = errors.New("mentor name is required")
	ErrInvalidStatus   = errors.New("session cannot move to the requested status")
)

type CreateSessionRequest struct {
	MentorID    string
	Title       string
	SessionFee  int64
	Capacity    int
	ScheduledAt time.Time
}

type Service struct {
	mentorRepo  MentorRepo
	sessionRepo SessionRepo
	bookingRepo BookingRepo
	txManager   pg.TXManager
	now         func() time.Time
}

func New(mentorRepo MentorRepo, sessionRepo SessionRepo, bookingRepo BookingRepo, txManager pg.TXManager) *Service {
	return &Service{
		mentorRepo:  mentorRepo,
		sessionRepo: sessionRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		now:         time.Now,
	}
}

func (s *Service) CreateMentor(ctx context.Context, name string) (*domain.Mentor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidMentor
	}
	mentor, err := s.mentorRepo.Create(ctx, &domain.Mentor{
		ID:        uuid.NewString(),
		Name:      name,
		IsActive:  true,
		CreatedAt: s.now(),
	})
	if err != nil {
		zap.L().Error("failed to create mentor", zap.Error(err))
		return nil, err
	}
	return mentor, nil
}

func (s *Service) GetMentor(ctx context.Context, id string) (*domain.Mentor, error) {
	mentor, err := s.mentorRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get mentor", zap.Error(err))
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}
	return mentor, nil
}

func (s *Service) CreateSession(ctx context.Context, req CreateSessionRequest) (*domain.Session, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.SessionFee < 0 || req.Capacity <= 0 {
		return nil, ErrInvalidSession
	}
	mentor, err := s.GetMentor(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}
	if !mentor.IsActive {
		return nil, ErrMentorInactive
	}

	session, err := s.sessionRepo.Create(ctx, &domain.Session{
		ID:          uuid.NewString(),
		MentorID:    mentor.ID,
		Title:       req.Title,
		SessionFee:  req.SessionFee,
		Capacity:    req.Capacity,
		BookedBy:    []string{},
		Status:      domain.SessionScheduled,
		ScheduledAt: req.ScheduledAt,
		CreatedAt:   s.now(),
	})
	if err != nil {
		zap.L().Error("failed to create session", zap.Error(err))
		return nil, err
	}
	zap.L().Info("session created", zap.String("session_id", session.ID), zap.String("mentor_id", mentor.ID))
	return session, nil
}

func (s *Service) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get session", zap.Error(err))
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// ListSessions returns the sessions still open for booking, soonest first.
func (s *Service) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessionRepo.FindScheduled(ctx)
	if err != nil {
		zap.L().Error("failed to list sessions", zap.Error(err))
		return nil, err
	}
	return sessions, nil
}

// StartSession closes the session for booking and moves its confirmed
// bookings to started.
func (s *Service) StartSession(ctx context.Context, id string) (*domain.Session, error) {
	return s.advance(ctx, id, domain.SessionScheduled, domain.SessionActive, func(ctx context.Context, session *domain.Session) error {
		bookings, err := s.bookingRepo.FindBySessionID(ctx, session.ID)
		if err != nil {
			return err
		}
		for _, b := range bookings {
			if b.Status != domain.BookingConfirmed {
				continue
			}
			if err := s.bookingRepo.UpdateStatus(ctx, b.ID, domain.BookingStarted); err != nil {
				return err
			}
		}
		return nil
	})
}

// CompleteSession completes every started booking and credits the mentor with
// that many delivered sessions. Completed bookings become payable.
func (s *Service) CompleteSession(ctx context.Context, id string) (*domain.Session, error) {
	return s.advance(ctx, id, domain.SessionActive, domain.SessionCompleted, func(ctx context.Context, session *domain.Session) error {
		bookings, err := s.bookingRepo.FindBySessionID(ctx, session.ID)
		if err != nil {
			return err
		}
		var started []string
		for _, b := range bookings {
			if b.Status == domain.BookingStarted {
				started = append(started, b.ID)
			}
		}
		if len(started) == 0 {
			return nil
		}
		if err := s.mentorRepo.IncrementTotalSessions(ctx, session.MentorID, len(started)); err != nil {
			return err
		}
		for _, bookingID := range started {
			if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingCompleted); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) advance(ctx context.Context, id string, from, to domain.SessionStatus, cascade func(context.Context, *domain.Session) error) (*domain.Session, error) {
	var result *domain.Session
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		session, err := s.sessionRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrSessionNotFound
		}
		if session.Status != from {
			return ErrInvalidStatus
		}
		if err := s.sessionRepo.UpdateStatus(ctx, id, to); err != nil {
			return err
		}
		if err := cascade(ctx, session); err != nil {
			return err
		}
		session.Status = to
		result = session
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrInvalidStatus) {
			zap.L().Info("session transition rejected", zap.String("session_id", id), zap.String("to", string(to)), zap.Error(err))
		} else {
			zap.L().Error("failed to change session status", zap.String("session_id", id), zap.Error(err))
		}
		return nil, err
	}
	zap.L().Info("session status changed", zap.String("session_id", id), zap.String("status", string(to)))
	return result, nil
}
