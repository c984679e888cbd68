package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/service/ledgerservice"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.PendingPayment) error
	FindByIDForUpdate(ctx context.Context, id string) (*domain.PendingPayment, error)
	FindAll(ctx context.Context) ([]domain.PendingPayment, error)
	Delete(ctx context.Context, id string) error
}

type MenteeRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Mentee, error)
}

type Ledger interface {
	ApplyBalanceChange(ctx context.Context, userID string, delta int64, source domain.TransactionSource, description string) (int64, error)
}

type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

var (
	ErrPaymentNotFound    = errors.New("pending payment not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrReferenceRequired  = errors.New("transaction reference is required")
	ErrDuplicateReference = errors.New("transaction reference was already submitted")

	ErrUserNotFound    = ledgerservice.ErrUserNotFound
	ErrBalanceOverflow = ledgerservice.ErrBalanceOverflow
)

type Service struct {
	paymentRepo PaymentRepo
	menteeRepo  MenteeRepo
	ledger      Ledger
	txManager   pg.TXManager
	notifier    Notifier
	now         func() time.Time
}

func New(paymentRepo PaymentRepo, menteeRepo MenteeRepo, ledger Ledger, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		menteeRepo:  menteeRepo,
		ledger:      ledger,
		txManager:   txManager,
		notifier:    notifier,
		now:         time.Now,
	}
}

// SubmitPendingPayment records a manual mobile-wallet top-up awaiting review.
// The wallet transaction reference may only be submitted once.
func (s *Service) SubmitPendingPayment(ctx context.Context, userID, transactionID string, amount int64) (*domain.PendingPayment, error) {
	transactionID = strings.TrimSpace(transactionID)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if transactionID == "" {
		return nil, ErrReferenceRequired
	}
	mentee, err := s.menteeRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get mentee", zap.Error(err))
		return nil, err
	}
	if mentee == nil {
		return nil, ErrUserNotFound
	}

	payment := &domain.PendingPayment{
		ID:            uuid.NewString(),
		UserID:        userID,
		TransactionID: transactionID,
		Amount:        amount,
		CreatedAt:     s.now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrDuplicateReference
		}
		zap.L().Error("failed to create pending payment", zap.Error(err))
		return nil, err
	}
	zap.L().Info("pending payment submitted", zap.String("payment_id", payment.ID), zap.String("user_id", userID), zap.Int64("amount", amount))
	return payment, nil
}

// ApprovePendingPayment credits the payment amount and deletes the pending
// record in the same commit, so a retried approval finds nothing to approve.
func (s *Service) ApprovePendingPayment(ctx context.Context, paymentID, approverID string) (int64, error) {
	var (
		payment    *domain.PendingPayment
		newBalance int64
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.paymentRepo.FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPaymentNotFound
		}
		description := fmt.Sprintf("Wallet top-up %s approved", p.TransactionID)
		newBalance, err = s.ledger.ApplyBalanceChange(ctx, p.UserID, p.Amount, domain.SourceBkash, description)
		if err != nil {
			return err
		}
		if err := s.paymentRepo.Delete(ctx, p.ID); err != nil {
			return err
		}
		payment = p
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) || errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrBalanceOverflow) {
			zap.L().Info("payment approval rejected", zap.String("payment_id", paymentID), zap.Error(err))
		} else {
			zap.L().Error("failed to approve payment", zap.String("payment_id", paymentID), zap.Error(err))
		}
		return 0, err
	}

	zap.L().Info("payment approved",
		zap.String("payment_id", paymentID),
		zap.String("approver_id", approverID),
		zap.String("user_id", payment.UserID),
		zap.Int64("amount", payment.Amount),
	)
	s.notifier.Notify(ctx, domain.Event{
		Type:        domain.EventPaymentApproved,
		UserID:      payment.UserID,
		ReferenceID: payment.TransactionID,
		Amount:      payment.Amount,
		OccurredAt:  s.now(),
	})
	return newBalance, nil
}

// RejectPendingPayment discards the request without touching the balance.
func (s *Service) RejectPendingPayment(ctx context.Context, paymentID, approverID string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.paymentRepo.FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPaymentNotFound
		}
		return s.paymentRepo.Delete(ctx, p.ID)
	})
	if err != nil {
		if !errors.Is(err, ErrPaymentNotFound) {
			zap.L().Error("failed to reject payment", zap.String("payment_id", paymentID), zap.Error(err))
		}
		return err
	}
	zap.L().Info("payment rejected", zap.String("payment_id", paymentID), zap.String("approver_id", approverID))
	return nil
}

func (s *Service) GetPendingPayments(ctx context.Context) ([]domain.PendingPayment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get pending payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
