package bookingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/service/ledgerservice"
)

//go:generate mockgen -source=bookingservice.go -destination=mock_bookingservice.go -package=bookingservice

type SessionRepo interface {
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Session, error)
	AddBookedMentee(ctx context.Context, sessionID, menteeID string) error
	RemoveBookedMentee(ctx context.Context, sessionID, menteeID string) error
}

type BookingRepo interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error)
	FindByMenteeID(ctx context.Context, menteeID string) ([]domain.Booking, error)
	FindBySessionID(ctx context.Context, sessionID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

type MenteeRepo interface {
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Mentee, error)
}

type Ledger interface {
	ApplyBalanceChange(ctx context.Context, userID string, delta int64, source domain.TransactionSource, description string) (int64, error)
}

type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionFull     = errors.New("session is already full")
	ErrSessionClosed   = errors.New("session is no longer open for booking")
	ErrAlreadyBooked   = errors.New("session already booked by this mentee")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotBookingOwner = errors.New("booking belongs to another mentee")
	ErrInvalidStatus   = errors.New("booking cannot be cancelled in its current status")

	ErrInsufficientBalance = ledgerservice.ErrInsufficientBalance
	ErrUserNotFound        = ledgerservice.ErrUserNotFound
	ErrBalanceOverflow     = ledgerservice.ErrBalanceOverflow
)

type Service struct {
	sessionRepo SessionRepo
	bookingRepo BookingRepo
	menteeRepo  MenteeRepo
	ledger      Ledger
	txManager   pg.TXManager
	notifier    Notifier
	now         func() time.Time
}

func New(sessionRepo SessionRepo, bookingRepo BookingRepo, menteeRepo MenteeRepo, ledger Ledger, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		bookingRepo: bookingRepo,
		menteeRepo:  menteeRepo,
		ledger:      ledger,
		txManager:   txManager,
		notifier:    notifier,
		now:         time.Now,
	}
}

// BookSession reserves one seat for the mentee and captures the session fee.
// Seat, fee debit, ledger entry and booking commit together or not at all;
// the session row lock makes concurrent bookers for the last seat queue up
// and the losers observe a full session.
func (s *Service) BookSession(ctx context.Context, sessionID, menteeID string) (*domain.Booking, error) {
	var booking *domain.Booking
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		session, err := s.sessionRepo.FindByIDForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return ErrSessionNotFound
		}
		if session.Status != domain.SessionScheduled {
			return ErrSessionClosed
		}
		if session.IsFull() {
			return ErrSessionFull
		}
		if session.HasBooked(menteeID) {
			return ErrAlreadyBooked
		}

		mentee, err := s.menteeRepo.FindByIDForUpdate(ctx, menteeID)
		if err != nil {
			return err
		}
		if mentee == nil {
			return ErrUserNotFound
		}
		if session.SessionFee > 0 {
			if mentee.Balance < session.SessionFee {
				return ErrInsufficientBalance
			}
			description := fmt.Sprintf("Booking for session %s", sessionLabel(session))
			if _, err := s.ledger.ApplyBalanceChange(ctx, menteeID, -session.SessionFee, domain.SourceSessionPayment, description); err != nil {
				return err
			}
		}

		if err := s.sessionRepo.AddBookedMentee(ctx, sessionID, menteeID); err != nil {
			return err
		}
		now := s.now()
		b := &domain.Booking{
			ID:                      uuid.NewString(),
			SessionID:               session.ID,
			MentorID:                session.MentorID,
			MenteeID:                menteeID,
			SessionFee:              session.SessionFee,
			Status:                  domain.BookingConfirmed,
			BookingTime:             now,
			AdminDisbursementStatus: domain.DisbursementPending,
			UpdatedAt:               now,
		}
		if err := s.bookingRepo.Create(ctx, b); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrAlreadyBooked
			}
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		logFailure("failed to book session", err, zap.String("session_id", sessionID), zap.String("mentee_id", menteeID))
		return nil, err
	}

	zap.L().Info("session booked",
		zap.String("booking_id", booking.ID),
		zap.String("session_id", sessionID),
		zap.String("mentee_id", menteeID),
		zap.Int64("fee", booking.SessionFee),
	)
	s.notifier.Notify(ctx, domain.Event{
		Type:        domain.EventBookingConfirmed,
		UserID:      menteeID,
		SessionID:   sessionID,
		ReferenceID: booking.ID,
		Amount:      booking.SessionFee,
		OccurredAt:  booking.BookingTime,
	})
	return booking, nil
}

// CancelBooking frees the seat and refunds the fee captured at booking time.
// Mentees may only cancel their own bookings; admins may cancel any.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorID string, asAdmin bool) (*domain.Booking, error) {
	existing, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to get booking", zap.Error(err))
		return nil, err
	}
	if existing == nil {
		return nil, ErrBookingNotFound
	}

	var booking *domain.Booking
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Session first, then booking: the same lock order as BookSession and
		// the session lifecycle.
		if _, err := s.sessionRepo.FindByIDForUpdate(ctx, existing.SessionID); err != nil {
			return err
		}
		b, err := s.bookingRepo.FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if !asAdmin && b.MenteeID != actorID {
			return ErrNotBookingOwner
		}
		if !b.Status.CanTransition(domain.BookingCancelled) {
			return ErrInvalidStatus
		}

		if err := s.bookingRepo.UpdateStatus(ctx, b.ID, domain.BookingCancelled); err != nil {
			return err
		}
		if err := s.sessionRepo.RemoveBookedMentee(ctx, b.SessionID, b.MenteeID); err != nil {
			return err
		}
		if b.SessionFee > 0 {
			description := fmt.Sprintf("Refund for cancelled booking %s", b.ID)
			if _, err := s.ledger.ApplyBalanceChange(ctx, b.MenteeID, b.SessionFee, domain.SourceRefund, description); err != nil {
				return err
			}
		}
		b.Status = domain.BookingCancelled
		booking = b
		return nil
	})
	if err != nil {
		logFailure("failed to cancel booking", err, zap.String("booking_id", bookingID))
		return nil, err
	}

	zap.L().Info("booking cancelled", zap.String("booking_id", bookingID), zap.String("actor_id", actorID))
	s.notifier.Notify(ctx, domain.Event{
		Type:        domain.EventBookingCancelled,
		UserID:      booking.MenteeID,
		SessionID:   booking.SessionID,
		ReferenceID: booking.ID,
		Amount:      booking.SessionFee,
		OccurredAt:  s.now(),
	})
	return booking, nil
}

func (s *Service) GetBookings(ctx context.Context, menteeID string) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.FindByMenteeID(ctx, menteeID)
	if err != nil {
		zap.L().Error("failed to get bookings", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *Service) GetSessionBookings(ctx context.Context, sessionID string) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to get session bookings", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func sessionLabel(session *domain.Session) string {
	if session.Title != "" {
		return fmt.Sprintf("%q", session.Title)
	}
	return session.ID
}

var businessErrors = []error{
	ErrSessionNotFound, ErrSessionFull, ErrSessionClosed, ErrAlreadyBooked,
	ErrBookingNotFound, ErrNotBookingOwner, ErrInvalidStatus,
	ErrInsufficientBalance, ErrUserNotFound, ErrBalanceOverflow,
}

func logFailure(msg string, err error, fields ...zap.Field) {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			zap.L().Info(msg, append(fields, zap.Error(err))...)
			return
		}
	}
	zap.L().Error(msg, append(fields, zap.Error(err))...)
}
