package ledgerservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type MenteeRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Mentee, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Mentee, error)
	UpdateBalance(ctx context.Context, id string, balance int64) error
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.BalanceTransaction) error
	FindByUserID(ctx context.Context, userID string) ([]domain.BalanceTransaction, error)
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceOverflow     = errors.New("credit would exceed the maximum balance")
)

// Service is the only writer of mentee balances. Every change is paired with
// exactly one BalanceTransaction in the same database transaction.
type Service struct {
	menteeRepo      MenteeRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	now             func() time.Time
}

func New(menteeRepo MenteeRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		menteeRepo:      menteeRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		now:             time.Now,
	}
}

// ApplyBalanceChange credits (delta > 0) or debits (delta < 0) a mentee and
// appends the matching ledger entry. When called inside another transaction
// it joins it, so callers can combine the change with their own writes.
func (s *Service) ApplyBalanceChange(ctx context.Context, userID string, delta int64, source domain.TransactionSource, description string) (int64, error) {
	var newBalance int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		mentee, err := s.menteeRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if mentee == nil {
			return ErrUserNotFound
		}
		if delta < 0 && mentee.Balance+delta < 0 {
			zap.L().Info("debit rejected, insufficient balance",
				zap.String("user_id", userID),
				zap.Int64("balance", mentee.Balance),
				zap.Int64("delta", delta),
			)
			return ErrInsufficientBalance
		}
		if delta > 0 && mentee.Balance > math.MaxInt64-delta {
			zap.L().Warn("credit rejected, balance overflow",
				zap.String("user_id", userID),
				zap.Int64("balance", mentee.Balance),
				zap.Int64("delta", delta),
			)
			return ErrBalanceOverflow
		}

		newBalance = mentee.Balance + delta
		if err := s.menteeRepo.UpdateBalance(ctx, userID, newBalance); err != nil {
			return err
		}
		return s.transactionRepo.Create(ctx, &domain.BalanceTransaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			Amount:      delta,
			Source:      source,
			Description: description,
			CreatedAt:   s.now(),
		})
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) && !errors.Is(err, ErrUserNotFound) && !errors.Is(err, ErrBalanceOverflow) {
			zap.L().Error("failed to apply balance change", zap.String("user_id", userID), zap.Error(err))
		}
		return 0, err
	}

	zap.L().Info("balance changed",
		zap.String("user_id", userID),
		zap.Int64("delta", delta),
		zap.String("source", string(source)),
		zap.Int64("balance", newBalance),
	)
	return newBalance, nil
}

func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	mentee, err := s.menteeRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if mentee == nil {
		return 0, ErrUserNotFound
	}
	return mentee.Balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID string) ([]domain.BalanceTransaction, error) {
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
