package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/mentorhub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

var columnNames = []string{"id", "user_id", "transaction_id", "amount", "created_at"}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	at := time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("FROM pending_payments")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.PendingPayment
	}{
		{
			name: "Payment found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("p1").
					WillReturnRows(pgxmock.NewRows(columnNames).AddRow("p1", "u1", "TX1", int64(800), at))
			},
			result: &domain.PendingPayment{ID: "p1", UserID: "u1", TransactionID: "TX1", Amount: 800, CreatedAt: at},
		},
		{
			name: "Already processed",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("p1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("p1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByIDForUpdate(context.Background(), "p1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
		WillReturnRows(pgxmock.NewRows(columnNames).
			AddRow("p1", "u1", "TX1", int64(800), at).
			AddRow("p2", "u2", "TX2", int64(100), at.Add(time.Second)))

	payments, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "p1", payments[0].ID)
}

func TestRepository_CreateAndDelete(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Now()
	p := &domain.PendingPayment{ID: "p1", UserID: "u1", TransactionID: "TX1", Amount: 800, CreatedAt: at}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pending_payments")).
		WithArgs("p1", "u1", "TX1", int64(800), at).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Create(context.Background(), p))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pending_payments WHERE id = $1")).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), "p1"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pending_payments WHERE id = $1")).
		WithArgs("p1").
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Delete(context.Background(), "p1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
