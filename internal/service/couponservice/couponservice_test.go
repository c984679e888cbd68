package couponservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/repo/memstore"
	"github.com/GlebRadaev/mentorhub/internal/service/ledgerservice"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockCouponRepo, *MockLedger, *MockNotifier) {
	ctrl := gomock.NewController(t)
	couponRepo := NewMockCouponRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	notifier := NewMockNotifier(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	service := New(couponRepo, ledger, txManager, notifier)
	service.now = func() time.Time { return fixedNow }
	return service, couponRepo, ledger, notifier
}

func TestRedeemCoupon(t *testing.T) {
	valid := func() *domain.Coupon {
		return &domain.Coupon{Code: "SAVE500", Amount: 500, ExpiresAt: fixedNow.Add(time.Hour)}
	}

	tests := []struct {
		name          string
		prepareMock   func(couponRepo *MockCouponRepo, ledger *MockLedger, notifier *MockNotifier)
		expectedError error
	}{
		{
			name: "Success",
			prepareMock: func(couponRepo *MockCouponRepo, ledger *MockLedger, notifier *MockNotifier) {
				couponRepo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SAVE500").Return(valid(), nil)
				couponRepo.EXPECT().MarkUsed(gomock.Any(), "SAVE500", "u1", fixedNow).Return(nil)
				ledger.EXPECT().ApplyBalanceChange(gomock.Any(), "u1", int64(500), domain.SourceCoupon, gomock.Any()).Return(int64(500), nil)
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "Unknown code",
			prepareMock: func(couponRepo *MockCouponRepo, ledger *MockLedger, notifier *MockNotifier) {
				couponRepo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SAVE500").Return(nil, nil)
			},
			expectedError: ErrCouponNotFound,
		},
		{
			name: "Expired",
			prepareMock: func(couponRepo *MockCouponRepo, ledger *MockLedger, notifier *MockNotifier) {
				c := valid()
				c.ExpiresAt = fixedNow.Add(-time.Second)
				couponRepo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SAVE500").Return(c, nil)
			},
			expectedError: ErrCouponExpired,
		},
		{
			name: "Already used",
			prepareMock: func(couponRepo *MockCouponRepo, ledger *MockLedger, notifier *MockNotifier) {
				c := valid()
				c.IsUsed = true
				couponRepo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SAVE500").Return(c, nil)
			},
			expectedError: ErrCouponAlreadyUsed,
		},
		{
			name: "Ledger failure",
			prepareMock: func(couponRepo *MockCouponRepo, ledger *MockLedger, notifier *MockNotifier) {
				couponRepo.EXPECT().FindByCodeForUpdate(gomock.Any(), "SAVE500").Return(valid(), nil)
				couponRepo.EXPECT().MarkUsed(gomock.Any(), "SAVE500", "u1", fixedNow).Return(nil)
				ledger.EXPECT().ApplyBalanceChange(gomock.Any(), "u1", int64(500), domain.SourceCoupon, gomock.Any()).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, couponRepo, ledger, notifier := NewMock(t)
			tt.prepareMock(couponRepo, ledger, notifier)

			credited, err := service.RedeemCoupon(context.Background(), " save500 ", "u1")
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(500), credited)
		})
	}
}

func TestCreateCoupon(t *testing.T) {
	tests := []struct {
		name          string
		code          string
		amount        int64
		expiresAt     time.Time
		prepareMock   func(couponRepo *MockCouponRepo)
		expectedError error
	}{
		{
			name:      "Success",
			code:      "welcome",
			amount:    100,
			expiresAt: fixedNow.Add(24 * time.Hour),
			prepareMock: func(couponRepo *MockCouponRepo) {
				couponRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Coupon) error {
					assert.Equal(t, "WELCOME", c.Code)
					assert.False(t, c.IsUsed)
					return nil
				})
			},
		},
		{
			name:          "Already expired",
			code:          "OLD",
			amount:        100,
			expiresAt:     fixedNow,
			prepareMock:   func(*MockCouponRepo) {},
			expectedError: ErrInvalidCoupon,
		},
		{
			name:          "Zero amount",
			code:          "FREE",
			expiresAt:     fixedNow.Add(time.Hour),
			prepareMock:   func(*MockCouponRepo) {},
			expectedError: ErrInvalidCoupon,
		},
		{
			name:      "Duplicate code",
			code:      "WELCOME",
			amount:    100,
			expiresAt: fixedNow.Add(time.Hour),
			prepareMock: func(couponRepo *MockCouponRepo) {
				couponRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrCouponExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, couponRepo, _, _ := NewMock(t)
			tt.prepareMock(couponRepo)

			_, err := service.CreateCoupon(context.Background(), tt.code, tt.amount, tt.expiresAt)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
		})
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, domain.Event) {}

func newStoreService(t *testing.T, mentees ...string) (*Service, *ledgerservice.Service) {
	store := memstore.New()
	for _, id := range mentees {
		_, err := store.Mentees().Create(context.Background(), &domain.Mentee{ID: id, Email: id + "@mail.com"})
		require.NoError(t, err)
	}
	ledger := ledgerservice.New(store.Mentees(), store.Transactions(), store)
	return New(store.Coupons(), ledger, store, nopNotifier{}), ledger
}

func TestRedeemCoupon_SingleUse(t *testing.T) {
	service, ledger := newStoreService(t, "u1", "u2")
	ctx := context.Background()

	_, err := service.CreateCoupon(ctx, "SAVE500", 500, time.Now().Add(time.Hour))
	require.NoError(t, err)

	credited, err := service.RedeemCoupon(ctx, "save500", "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), credited)

	_, err = service.RedeemCoupon(ctx, "SAVE500", "u2")
	require.ErrorIs(t, err, ErrCouponAlreadyUsed)

	balance, err := ledger.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)
	balance, err = ledger.GetBalance(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	transactions, err := ledger.GetTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, domain.SourceCoupon, transactions[0].Source)
}

func TestRedeemCoupon_ExpiredAndUnknownUser(t *testing.T) {
	service, ledger := newStoreService(t, "u1")
	ctx := context.Background()

	_, err := service.CreateCoupon(ctx, "SPRING", 300, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = service.RedeemCoupon(ctx, "SPRING", "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)

	service.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = service.RedeemCoupon(ctx, "SPRING", "u1")
	require.ErrorIs(t, err, ErrCouponExpired)

	balance, err := ledger.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestRedeemCoupon_ConcurrentRedeemersCreditOnce(t *testing.T) {
	users := make([]string, 20)
	for i := range users {
		users[i] = fmt.Sprintf("u%d", i)
	}
	service, ledger := newStoreService(t, users...)
	ctx := context.Background()

	_, err := service.CreateCoupon(ctx, "RACE", 250, time.Now().Add(time.Hour))
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for _, u := range users {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, err := service.RedeemCoupon(ctx, "RACE", userID)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrCouponAlreadyUsed)
		}(u)
	}
	wg.Wait()
	assert.Equal(t, 1, succeeded)

	var total int64
	for _, u := range users {
		balance, err := ledger.GetBalance(ctx, u)
		require.NoError(t, err)
		total += balance
	}
	assert.Equal(t, int64(250), total)
}
