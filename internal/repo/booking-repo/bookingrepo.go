package bookingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
)

const columns = "id, session_id, mentor_id, mentee_id, session_fee, status, booking_time, disbursement_status, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, session_id, mentor_id, mentee_id, session_fee, status, booking_time, disbursement_status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := repo.db.Exec(ctx, query,
		b.ID, b.SessionID, b.MentorID, b.MenteeID, b.SessionFee, b.Status, b.BookingTime, b.AdminDisbursementStatus, b.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't save booking", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	return repo.findOne(ctx, "SELECT "+columns+" FROM bookings WHERE id = $1", id)
}

func (repo *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	return repo.findOne(ctx, "SELECT "+columns+" FROM bookings WHERE id = $1 FOR UPDATE", id)
}

// FindByIDsForUpdate locks the rows in id order so concurrent callers
// acquire them in the same sequence.
func (repo *Repository) FindByIDsForUpdate(ctx context.Context, ids []string) ([]domain.Booking, error) {
	return repo.findMany(ctx, "SELECT "+columns+" FROM bookings WHERE id = ANY($1) ORDER BY id FOR UPDATE", ids)
}

func (repo *Repository) FindByMenteeID(ctx context.Context, menteeID string) ([]domain.Booking, error) {
	return repo.findMany(ctx, "SELECT "+columns+" FROM bookings WHERE mentee_id = $1 ORDER BY booking_time DESC", menteeID)
}

func (repo *Repository) FindBySessionID(ctx context.Context, sessionID string) ([]domain.Booking, error) {
	return repo.findMany(ctx, "SELECT "+columns+" FROM bookings WHERE session_id = $1 ORDER BY booking_time DESC", sessionID)
}

func (repo *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	_, err := repo.db.Exec(ctx, "UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		zap.L().Error("can't update booking status", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) MarkDisbursed(ctx context.Context, ids []string) error {
	_, err := repo.db.Exec(ctx, "UPDATE bookings SET disbursement_status = $1, updated_at = now() WHERE id = ANY($2)", domain.DisbursementPaid, ids)
	if err != nil {
		zap.L().Error("can't mark bookings disbursed", zap.Error(err))
		return err
	}
	return nil
}

// SumCompletedFees is the mentor's lifetime earnings.
func (repo *Repository) SumCompletedFees(ctx context.Context, mentorID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(session_fee), 0)
		FROM bookings
		WHERE mentor_id = $1 AND status = $2
	`
	var total int64
	if err := repo.db.QueryRow(ctx, query, mentorID, domain.BookingCompleted).Scan(&total); err != nil {
		zap.L().Error("can't sum completed fees", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Booking, error) {
	var b domain.Booking
	err := repo.db.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.SessionID, &b.MentorID, &b.MenteeID, &b.SessionFee, &b.Status, &b.BookingTime, &b.AdminDisbursementStatus, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (repo *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(&b.ID, &b.SessionID, &b.MentorID, &b.MenteeID, &b.SessionFee, &b.Status, &b.BookingTime, &b.AdminDisbursementStatus, &b.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
