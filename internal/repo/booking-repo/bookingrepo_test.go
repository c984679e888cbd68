package bookingrepo

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

var (
	columnNames = []string{"id", "session_id", "mentor_id", "mentee_id", "session_fee", "status", "booking_time", "disbursement_status", "updated_at"}
	at          = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
)

func row(rows *pgxmock.Rows, id string, status domain.BookingStatus) *pgxmock.Rows {
	return rows.AddRow(id, "s1", "m1", "u1", int64(300), status, at, domain.DisbursementPending, at)
}

func TestRepository_FindByID(t *testing.T) {
	query := regexp.QuoteMeta("SELECT " + columns + " FROM bookings WHERE id = $1")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Booking
	}{
		{
			name: "Booking found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("b1").WillReturnRows(row(pgxmock.NewRows(columnNames), "b1", domain.BookingConfirmed))
			},
			result: &domain.Booking{
				ID: "b1", SessionID: "s1", MentorID: "m1", MenteeID: "u1", SessionFee: 300,
				Status: domain.BookingConfirmed, BookingTime: at, AdminDisbursementStatus: domain.DisbursementPending, UpdatedAt: at,
			},
		},
		{
			name: "Booking not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("b1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("b1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByID(context.Background(), "b1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByIDsForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	rows := pgxmock.NewRows(columnNames)
	row(rows, "b1", domain.BookingCompleted)
	row(rows, "b2", domain.BookingCompleted)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ANY($1) ORDER BY id FOR UPDATE")).
		WithArgs([]string{"b1", "b2"}).
		WillReturnRows(rows)

	bookings, err := repo.FindByIDsForUpdate(context.Background(), []string{"b1", "b2"})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.True(t, bookings[0].Disbursable())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByMenteeID(t *testing.T) {
	t.Run("Empty result", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE mentee_id = $1 ORDER BY booking_time DESC")).
			WithArgs("u1").
			WillReturnRows(pgxmock.NewRows(columnNames))

		bookings, err := repo.FindByMenteeID(context.Background(), "u1")
		assert.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE mentee_id = $1")).
			WithArgs("u1").
			WillReturnError(errors.New("database error"))

		_, err := repo.FindByMenteeID(context.Background(), "u1")
		assert.Error(t, err)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	b := &domain.Booking{
		ID: "b1", SessionID: "s1", MentorID: "m1", MenteeID: "u1", SessionFee: 300,
		Status: domain.BookingConfirmed, BookingTime: at, AdminDisbursementStatus: domain.DisbursementPending, UpdatedAt: at,
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs("b1", "s1", "m1", "u1", int64(300), domain.BookingConfirmed, at, domain.DisbursementPending, at).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumCompletedFees(t *testing.T) {
	query := regexp.QuoteMeta("SELECT COALESCE(SUM(session_fee), 0)")

	t.Run("Success", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs("m1", domain.BookingCompleted).
			WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(600)))

		total, err := repo.SumCompletedFees(context.Background(), "m1")
		assert.NoError(t, err)
		assert.Equal(t, int64(600), total)
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs("m1", domain.BookingCompleted).WillReturnError(errors.New("database error"))

		_, err := repo.SumCompletedFees(context.Background(), "m1")
		assert.Error(t, err)
	})
}

func TestRepository_StatusWrites(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2")).
		WithArgs(domain.BookingCancelled, "b1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdateStatus(context.Background(), "b1", domain.BookingCancelled))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET disbursement_status = $1, updated_at = now() WHERE id = ANY($2)")).
		WithArgs(domain.DisbursementPaid, []string{"b1", "b2"}).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.MarkDisbursed(context.Background(), []string{"b1", "b2"}))

	assert.NoError(t, mock.ExpectationsWereMet())
}
