package transactionrepo

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

// Create appends to the ledger. Rows are never updated or deleted.
func (repo *Repository) Create(ctx context.Context, t *domain.BalanceTransaction) error {
	query := `
		INSERT INTO balance_transactions (id, user_id, amount, source, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := repo.db.Exec(ctx, query, t.ID, t.UserID, t.Amount, t.Source, t.Description, t.CreatedAt)
	if err != nil {
		zap.L().Error("can't save balance transaction", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.BalanceTransaction, error) {
	query := `
		SELECT id, user_id, amount, source, description, created_at
		FROM balance_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get balance transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.BalanceTransaction
	for rows.Next() {
		var t domain.BalanceTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Source, &t.Description, &t.CreatedAt); err != nil {
			zap.L().Error("can't scan balance transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
