package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (repo *Repository) Create(ctx context.Context, p *domain.PendingPayment) error {
	query := `
		INSERT INTO pending_payments (id, user_id, transaction_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := repo.db.Exec(ctx, query, p.ID, p.UserID, p.TransactionID, p.Amount, p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save pending payment", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.PendingPayment, error) {
	query := `
		SELECT id, user_id, transaction_id, amount, created_at
		FROM pending_payments
		WHERE id = $1
		FOR UPDATE
	`
	var p domain.PendingPayment
	err := repo.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.UserID, &p.TransactionID, &p.Amount, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find pending payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (repo *Repository) FindAll(ctx context.Context) ([]domain.PendingPayment, error) {
	query := `
		SELECT id, user_id, transaction_id, amount, created_at
		FROM pending_payments
		ORDER BY created_at ASC
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.PendingPayment
	for rows.Next() {
		var p domain.PendingPayment
		if err := rows.Scan(&p.ID, &p.UserID, &p.TransactionID, &p.Amount, &p.CreatedAt); err != nil {
			zap.L().Error("can't scan pending payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM pending_payments WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete pending payment", zap.Error(err))
		return err
	}
	return nil
}
