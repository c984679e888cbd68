package mentorrepo

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

func TestRepository_FindByID(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT " + columns + " FROM mentors WHERE id = $1")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Mentor
	}{
		{
			name: "Mentor found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "name", "is_active", "total_sessions", "rating_avg", "rating_count", "created_at"}).
					AddRow("m1", "Ada", true, 12, 4.5, 8, createdAt)
				mock.ExpectQuery(query).WithArgs("m1").WillReturnRows(rows)
			},
			result: &domain.Mentor{ID: "m1", Name: "Ada", IsActive: true, TotalSessions: 12, RatingAvg: 4.5, RatingCount: 8, CreatedAt: createdAt},
		},
		{
			name: "Mentor not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("m1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs("m1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByID(context.Background(), "m1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	mentor := &domain.Mentor{ID: "m1", Name: "Ada", IsActive: true, CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mentors")).
		WithArgs(mentor.ID, mentor.Name, mentor.IsActive, 0, 0.0, 0, mentor.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	result, err := repo.Create(context.Background(), mentor)
	assert.NoError(t, err)
	assert.Equal(t, mentor, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementTotalSessions(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE mentors SET total_sessions = total_sessions + $1 WHERE id = $2")

	t.Run("Success", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(query).WithArgs(3, "m1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.IncrementTotalSessions(context.Background(), "m1", 3))
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(query).WithArgs(3, "m1").WillReturnError(errors.New("database error"))
		assert.Error(t, repo.IncrementTotalSessions(context.Background(), "m1", 3))
	})
}
