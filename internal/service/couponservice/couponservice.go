package couponservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/service/ledgerservice"
)

//go:generate mockgen -source=couponservice.go -destination=mock_couponservice.go -package=couponservice

type CouponRepo interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	FindByCodeForUpdate(ctx context.Context, code string) (*domain.Coupon, error)
	MarkUsed(ctx context.Context, code, userID string, at time.Time) error
}

type Ledger interface {
	ApplyBalanceChange(ctx context.Context, userID string, delta int64, source domain.TransactionSource, description string) (int64, error)
}

type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

var (
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponAlreadyUsed = errors.New("coupon has already been used")
	ErrCouponExists      = errors.New("coupon code already exists")
	ErrInvalidCoupon     = errors.New("coupon requires a code, a positive amount and a future expiry")

	ErrUserNotFound    = ledgerservice.ErrUserNotFound
	ErrBalanceOverflow = ledgerservice.ErrBalanceOverflow
)

type Service struct {
	couponRepo CouponRepo
	ledger     Ledger
	txManager  pg.TXManager
	notifier   Notifier
	now        func() time.Time
}

func New(couponRepo CouponRepo, ledger Ledger, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		couponRepo: couponRepo,
		ledger:     ledger,
		txManager:  txManager,
		notifier:   notifier,
		now:        time.Now,
	}
}

// NormalizeCode is the form codes are stored and looked up in.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *Service) CreateCoupon(ctx context.Context, code string, amount int64, expiresAt time.Time) (*domain.Coupon, error) {
	code = NormalizeCode(code)
	now := s.now()
	if code == "" || amount <= 0 || !expiresAt.After(now) {
		return nil, ErrInvalidCoupon
	}
	coupon := &domain.Coupon{
		Code:      code,
		Amount:    amount,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrCouponExists
		}
		zap.L().Error("failed to create coupon", zap.Error(err))
		return nil, err
	}
	zap.L().Info("coupon created", zap.String("code", code), zap.Int64("amount", amount))
	return coupon, nil
}

// RedeemCoupon consumes a single-use code and credits its amount. The used
// flag and the credit commit together.
func (s *Service) RedeemCoupon(ctx context.Context, code, userID string) (int64, error) {
	code = NormalizeCode(code)
	var credited int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		coupon, err := s.couponRepo.FindByCodeForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if coupon == nil {
			return ErrCouponNotFound
		}
		now := s.now()
		if coupon.Expired(now) {
			return ErrCouponExpired
		}
		if coupon.IsUsed {
			return ErrCouponAlreadyUsed
		}
		if err := s.couponRepo.MarkUsed(ctx, code, userID, now); err != nil {
			return err
		}
		description := fmt.Sprintf("Coupon %s redeemed", code)
		if _, err := s.ledger.ApplyBalanceChange(ctx, userID, coupon.Amount, domain.SourceCoupon, description); err != nil {
			return err
		}
		credited = coupon.Amount
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCouponNotFound), errors.Is(err, ErrCouponExpired),
			errors.Is(err, ErrCouponAlreadyUsed), errors.Is(err, ErrUserNotFound),
			errors.Is(err, ErrBalanceOverflow):
			zap.L().Info("coupon redemption rejected", zap.String("code", code), zap.String("user_id", userID), zap.Error(err))
		default:
			zap.L().Error("failed to redeem coupon", zap.String("code", code), zap.Error(err))
		}
		return 0, err
	}

	zap.L().Info("coupon redeemed", zap.String("code", code), zap.String("user_id", userID), zap.Int64("amount", credited))
	s.notifier.Notify(ctx, domain.Event{
		Type:        domain.EventCouponRedeemed,
		UserID:      userID,
		ReferenceID: code,
		Amount:      credited,
		OccurredAt:  s.now(),
	})
	return credited, nil
}
