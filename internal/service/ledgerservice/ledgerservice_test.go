package ledgerservice

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/repo/memstore"
)

func NewMock(t *testing.T) (*Service, *MockMenteeRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	menteeRepo := NewMockMenteeRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(menteeRepo, transactionRepo, txManager), menteeRepo, transactionRepo
}

func TestApplyBalanceChange(t *testing.T) {
	tests := []struct {
		name            string
		delta           int64
		source          domain.TransactionSource
		prepareMock     func(menteeRepo *MockMenteeRepo, transactionRepo *MockTransactionRepo)
		expectedBalance int64
		expectedError   error
	}{
		{
			name:   "Credit increases balance and logs entry",
			delta:  500,
			source: domain.SourceCoupon,
			prepareMock: func(menteeRepo *MockMenteeRepo, transactionRepo *MockTransactionRepo) {
				menteeRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "u1").Return(&domain.Mentee{ID: "u1", Balance: 100}, nil)
				menteeRepo.EXPECT().UpdateBalance(gomock.Any(), "u1", int64(600)).Return(nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tr *domain.BalanceTransaction) error {
					assert.Equal(t, "u1", tr.UserID)
					assert.Equal(t, int64(500), tr.Amount)
					assert.Equal(t, domain.SourceCoupon, tr.Source)
					assert.NotEmpty(t, tr.ID)
					return nil
				})
			},
			expectedBalance: 600,
		},
		{
			name:   "Debit down to exactly zero",
			delta:  -100,
			source: domain.SourceSessionPayment,
			prepareMock: func(menteeRepo *MockMenteeRepo, transactionRepo *MockTransactionRepo) {
				menteeRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "u1").Return(&domain.Mentee{ID: "u1", Balance: 100}, nil)
				menteeRepo.EXPECT().UpdateBalance(gomock.Any(), "u1", int64(0)).Return(nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedBalance: 0,
		},
		{
			name:   "Debit beyond balance is rejected without writes",
			delta:  -150,
			source: domain.SourceSessionPayment,
			prepareMock: func(menteeRepo *MockMenteeRepo, transactionRepo *MockTransactionRepo) {
				menteeRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "u1").Return(&domain.Mentee{ID: "u1", Balance: 100}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:   "Credit past the int64 limit is rejected without writes",
			delta:  100,
			source: domain.SourceCoupon,
			prepareMock: func(menteeRepo *MockMenteeRepo, transactionRepo *MockTransactionRepo) {
				menteeRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "u1").Return(&domain.Mentee{ID: "u1", Balance: math.MaxInt64 - 10}, nil)
			},
			expectedError: ErrBalanceOverflow,
		},
		{
			name:   "Credit up to exactly the int64 limit",
			delta:  10,
			source: domain.SourceCoupon,
			prepareMock: func(menteeRepo *MockMenteeRepo, transactionRepo *MockTransactionRepo) {
				menteeRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "u1").Return(&domain.Mentee{ID: "u1", Balance: math.MaxInt64 - 10}, nil)
				menteeRepo.EXPECT().UpdateBalance(gomock.Any(), "u1", int64(math.MaxInt64)).Return(nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedBalance: math.MaxInt64,
		},
		{
			name:   "Unknown user",
			delta:  100,
			source: domain.SourceBkash,
			prepareMock: func(menteeRepo *MockMenteeRepo, transactionRepo *MockTransactionRepo) {
				menteeRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "u1").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Balance update failure stops before logging",
			delta:  100,
			source: domain.SourceBkash,
			prepareMock: func(menteeRepo *MockMenteeRepo, transactionRepo *MockTransactionRepo) {
				menteeRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "u1").Return(&domain.Mentee{ID: "u1", Balance: 100}, nil)
				menteeRepo.EXPECT().UpdateBalance(gomock.Any(), "u1", int64(200)).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:   "Transaction log failure is returned",
			delta:  100,
			source: domain.SourceBkash,
			prepareMock: func(menteeRepo *MockMenteeRepo, transactionRepo *MockTransactionRepo) {
				menteeRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "u1").Return(&domain.Mentee{ID: "u1", Balance: 100}, nil)
				menteeRepo.EXPECT().UpdateBalance(gomock.Any(), "u1", int64(200)).Return(nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			expectedError: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, menteeRepo, transactionRepo := NewMock(t)
			tt.prepareMock(menteeRepo, transactionRepo)

			balance, err := service.ApplyBalanceChange(context.Background(), "u1", tt.delta, tt.source, "test")
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, balance)
		})
	}
}

func TestGetBalance(t *testing.T) {
	service, menteeRepo, _ := NewMock(t)

	menteeRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(&domain.Mentee{ID: "u1", Balance: 700}, nil)
	balance, err := service.GetBalance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(700), balance)

	menteeRepo.EXPECT().FindByID(gomock.Any(), "ghost").Return(nil, nil)
	_, err = service.GetBalance(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func newStoreService(t *testing.T, balance int64) (*Service, *memstore.Store) {
	store := memstore.New()
	_, err := store.Mentees().Create(context.Background(), &domain.Mentee{ID: "u1", Email: "u1@mail.com", Balance: balance})
	require.NoError(t, err)
	return New(store.Mentees(), store.Transactions(), store), store
}

func TestApplyBalanceChange_RejectedDebitLeavesNoTrace(t *testing.T) {
	service, store := newStoreService(t, 100)
	ctx := context.Background()

	_, err := service.ApplyBalanceChange(ctx, "u1", -101, domain.SourceSessionPayment, "too much")
	require.ErrorIs(t, err, ErrInsufficientBalance)

	balance, err := service.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	transactions, err := store.Transactions().FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestApplyBalanceChange_OverflowingCreditLeavesNoTrace(t *testing.T) {
	service, store := newStoreService(t, math.MaxInt64-10)
	ctx := context.Background()

	_, err := service.ApplyBalanceChange(ctx, "u1", 100, domain.SourceCoupon, "huge coupon")
	require.ErrorIs(t, err, ErrBalanceOverflow)

	balance, err := service.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-10), balance)

	transactions, err := store.Transactions().FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestApplyBalanceChange_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	service, _ := newStoreService(t, 1000)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ApplyBalanceChange(ctx, "u1", -100, domain.SourceSessionPayment, "booking")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrInsufficientBalance):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 40, rejected)

	balance, err := service.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	transactions, err := service.GetTransactions(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, transactions, 10)
	var sum int64
	for _, tr := range transactions {
		sum += tr.Amount
	}
	assert.Equal(t, int64(-1000), sum)
}
