package disbursementservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
)

//go:generate mockgen -source=disbursementservice.go -destination=mock_disbursementservice.go -package=disbursementservice

type MentorRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Mentor, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Mentor, error)
}

type BookingRepo interface {
	FindByIDsForUpdate(ctx context.Context, ids []string) ([]domain.Booking, error)
	MarkDisbursed(ctx context.Context, ids []string) error
	SumCompletedFees(ctx context.Context, mentorID string) (int64, error)
}

type DisbursementRepo interface {
	Create(ctx context.Context, disbursement *domain.Disbursement) error
	FindByMentorID(ctx context.Context, mentorID string) ([]domain.Disbursement, error)
	SumByMentorID(ctx context.Context, mentorID string) (int64, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.BalanceTransaction) error
}

type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

var (
	ErrMentorNotFound       = errors.New("mentor not found")
	ErrAmountExceedsPayable = errors.New("amount exceeds mentor's payable balance")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidBooking       = errors.New("bookings must be completed, unpaid bookings of this mentor")
	ErrAmountMismatch       = errors.New("amount must equal the fees of the listed bookings")
)

type Request struct {
	MentorID   string
	Amount     int64
	BookingIDs []string
	Note       string
	AdminID    string
}

type Service struct {
	mentorRepo       MentorRepo
	bookingRepo      BookingRepo
	disbursementRepo DisbursementRepo
	transactionRepo  TransactionRepo
	txManager        pg.TXManager
	notifier         Notifier
	now              func() time.Time
}

func New(
	mentorRepo MentorRepo,
	bookingRepo BookingRepo,
	disbursementRepo DisbursementRepo,
	transactionRepo TransactionRepo,
	txManager pg.TXManager,
	notifier Notifier,
) *Service {
	return &Service{
		mentorRepo:       mentorRepo,
		bookingRepo:      bookingRepo,
		disbursementRepo: disbursementRepo,
		transactionRepo:  transactionRepo,
		txManager:        txManager,
		notifier:         notifier,
		now:              time.Now,
	}
}

// PayableBalance is what the mentor has earned from completed bookings and
// not yet been paid. It is never stored.
func (s *Service) PayableBalance(ctx context.Context, mentorID string) (int64, error) {
	mentor, err := s.mentorRepo.FindByID(ctx, mentorID)
	if err != nil {
		zap.L().Error("failed to get mentor", zap.Error(err))
		return 0, err
	}
	if mentor == nil {
		return 0, ErrMentorNotFound
	}
	payable, err := s.payable(ctx, mentorID)
	if err != nil {
		zap.L().Error("failed to compute payable balance", zap.String("mentor_id", mentorID), zap.Error(err))
		return 0, err
	}
	return payable, nil
}

func (s *Service) payable(ctx context.Context, mentorID string) (int64, error) {
	earned, err := s.bookingRepo.SumCompletedFees(ctx, mentorID)
	if err != nil {
		return 0, fmt.Errorf("sum completed fees: %w", err)
	}
	paid, err := s.disbursementRepo.SumByMentorID(ctx, mentorID)
	if err != nil {
		return 0, fmt.Errorf("sum disbursements: %w", err)
	}
	return earned - paid, nil
}

// CreateDisbursement records a payout. The mentor row lock serializes payouts
// for one mentor so two admins cannot both spend the same payable balance.
func (s *Service) CreateDisbursement(ctx context.Context, req Request) (*domain.Disbursement, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	bookingIDs := compactIDs(req.BookingIDs)

	var disbursement *domain.Disbursement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		mentor, err := s.mentorRepo.FindByIDForUpdate(ctx, req.MentorID)
		if err != nil {
			return err
		}
		if mentor == nil {
			return ErrMentorNotFound
		}
		payable, err := s.payable(ctx, mentor.ID)
		if err != nil {
			return err
		}
		if req.Amount > payable {
			return ErrAmountExceedsPayable
		}
		if len(bookingIDs) > 0 {
			bookings, err := s.bookingRepo.FindByIDsForUpdate(ctx, bookingIDs)
			if err != nil {
				return err
			}
			if len(bookings) != len(bookingIDs) {
				return ErrInvalidBooking
			}
			var fees int64
			for _, b := range bookings {
				if b.MentorID != mentor.ID || !b.Disbursable() {
					return ErrInvalidBooking
				}
				fees += b.SessionFee
			}
			if fees != req.Amount {
				return ErrAmountMismatch
			}
		}

		now := s.now()
		d := &domain.Disbursement{
			ID:          uuid.NewString(),
			MentorID:    mentor.ID,
			TotalAmount: req.Amount,
			Status:      domain.DisbursementPaid,
			BookingIDs:  bookingIDs,
			Note:        strings.TrimSpace(req.Note),
			CreatedAt:   now,
			PaidAt:      &now,
			AdminID:     req.AdminID,
		}
		if err := s.disbursementRepo.Create(ctx, d); err != nil {
			return err
		}
		if len(bookingIDs) > 0 {
			if err := s.bookingRepo.MarkDisbursed(ctx, bookingIDs); err != nil {
				return err
			}
		}
		if err := s.transactionRepo.Create(ctx, &domain.BalanceTransaction{
			ID:          uuid.NewString(),
			UserID:      mentor.ID,
			Amount:      -req.Amount,
			Source:      domain.SourceDisbursement,
			Description: fmt.Sprintf("Disbursement %s", d.ID),
			CreatedAt:   now,
		}); err != nil {
			return err
		}
		disbursement = d
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMentorNotFound), errors.Is(err, ErrAmountExceedsPayable),
			errors.Is(err, ErrInvalidBooking), errors.Is(err, ErrAmountMismatch):
			zap.L().Info("disbursement rejected", zap.String("mentor_id", req.MentorID), zap.Int64("amount", req.Amount), zap.Error(err))
		default:
			zap.L().Error("failed to create disbursement", zap.String("mentor_id", req.MentorID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("disbursement recorded",
		zap.String("disbursement_id", disbursement.ID),
		zap.String("mentor_id", req.MentorID),
		zap.String("admin_id", req.AdminID),
		zap.Int64("amount", req.Amount),
	)
	s.notifier.Notify(ctx, domain.Event{
		Type:        domain.EventDisbursementRecorded,
		UserID:      req.MentorID,
		ReferenceID: disbursement.ID,
		Amount:      req.Amount,
		OccurredAt:  disbursement.CreatedAt,
	})
	return disbursement, nil
}

func (s *Service) GetDisbursements(ctx context.Context, mentorID string) ([]domain.Disbursement, error) {
	disbursements, err := s.disbursementRepo.FindByMentorID(ctx, mentorID)
	if err != nil {
		zap.L().Error("failed to get disbursements", zap.Error(err))
		return nil, err
	}
	return disbursements, nil
}

func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
