package couponrepo

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

var columnNames = []string{"code", "amount", "expires_at", "is_used", "used_by", "used_at", "created_at"}

func TestRepository_FindByCodeForUpdate(t *testing.T) {
	expires := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	usedAt := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("FROM coupons")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Coupon
	}{
		{
			name: "Unused coupon",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("SAVE500").
					WillReturnRows(pgxmock.NewRows(columnNames).
						AddRow("SAVE500", int64(500), expires, false, "", nil, created))
			},
			result: &domain.Coupon{Code: "SAVE500", Amount: 500, ExpiresAt: expires, CreatedAt: created},
		},
		{
			name: "Used coupon",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("SAVE500").
					WillReturnRows(pgxmock.NewRows(columnNames).
						AddRow("SAVE500", int64(500), expires, true, "u1", &usedAt, created))
			},
			result: &domain.Coupon{
				Code: "SAVE500", Amount: 500, ExpiresAt: expires, IsUsed: true,
				UsedBy: "u1", UsedAt: &usedAt, CreatedAt: created,
			},
		},
		{
			name: "Coupon not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("SAVE500").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("SAVE500").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByCodeForUpdate(context.Background(), "SAVE500")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateAndMarkUsed(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c := &domain.Coupon{Code: "SAVE500", Amount: 500, ExpiresAt: now.Add(24 * time.Hour), CreatedAt: now}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO coupons")).
		WithArgs("SAVE500", int64(500), now.Add(24*time.Hour), now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Create(context.Background(), c))

	mock.ExpectExec(regexp.QuoteMeta("SET is_used = TRUE, used_by = $1, used_at = $2")).
		WithArgs("u1", now, "SAVE500").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.MarkUsed(context.Background(), "SAVE500", "u1", now))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE coupons")).
		WithArgs("u1", now, "SAVE500").
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.MarkUsed(context.Background(), "SAVE500", "u1", now))

	assert.NoError(t, mock.ExpectationsWereMet())
}
