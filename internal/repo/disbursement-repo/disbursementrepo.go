package disbursementrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, d *domain.Disbursement) error {
	query := `
		INSERT INTO disbursements (id, mentor_id, total_amount, status, booking_ids, note, created_at, paid_at, admin_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	bookingIDs := d.BookingIDs
	if bookingIDs == nil {
		bookingIDs = []string{}
	}
	_, err := repo.db.Exec(ctx, query,
		d.ID, d.MentorID, d.TotalAmount, d.Status, bookingIDs, d.Note, d.CreatedAt, d.PaidAt, d.AdminID)
	if err != nil {
		zap.L().Error("can't save disbursement", zap.String("mentor_id", d.MentorID), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByMentorID(ctx context.Context, mentorID string) ([]domain.Disbursement, error) {
	query := `
		SELECT id, mentor_id, total_amount, status, booking_ids, note, created_at, paid_at, admin_id
		FROM disbursements
		WHERE mentor_id = $1
		ORDER BY created_at DESC
	`
	rows, err := repo.db.Query(ctx, query, mentorID)
	if err != nil {
		zap.L().Error("can't get disbursements", zap.String("mentor_id", mentorID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var disbursements []domain.Disbursement
	for rows.Next() {
		var d domain.Disbursement
		err := rows.Scan(&d.ID, &d.MentorID, &d.TotalAmount, &d.Status, &d.BookingIDs,
			&d.Note, &d.CreatedAt, &d.PaidAt, &d.AdminID)
		if err != nil {
			zap.L().Error("can't scan disbursement row", zap.Error(err))
			return nil, err
		}
		disbursements = append(disbursements, d)
	}
	return disbursements, rows.Err()
}

func (repo *Repository) SumByMentorID(ctx context.Context, mentorID string) (int64, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM disbursements WHERE mentor_id = $1`
	var total int64
	if err := repo.db.QueryRow(ctx, query, mentorID).Scan(&total); err != nil {
		zap.L().Error("can't sum disbursements", zap.String("mentor_id", mentorID), zap.Error(err))
		return 0, err
	}
	return total, nil
}
