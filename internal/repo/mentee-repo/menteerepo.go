package menteerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
)

const columns = "id, name, email, password_hash, balance, is_active, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, mentee *domain.Mentee) (*domain.Mentee, error) {
	query := `
		INSERT INTO mentees (id, name, email, password_hash, balance, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := repo.db.Exec(ctx, query, mentee.ID, mentee.Name, mentee.Email, mentee.PasswordHash, mentee.Balance, mentee.IsActive, mentee.CreatedAt)
	if err != nil {
		zap.L().Error("can't save mentee", zap.Error(err))
		return nil, err
	}
	return mentee, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Mentee, error) {
	return repo.findOne(ctx, "SELECT "+columns+" FROM mentees WHERE id = $1", id)
}

// FindByIDForUpdate must run inside a transaction; the row stays locked
// until it ends.
func (repo *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Mentee, error) {
	return repo.findOne(ctx, "SELECT "+columns+" FROM mentees WHERE id = $1 FOR UPDATE", id)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Mentee, error) {
	return repo.findOne(ctx, "SELECT "+columns+" FROM mentees WHERE email = $1", email)
}

func (repo *Repository) UpdateBalance(ctx context.Context, id string, balance int64) error {
	_, err := repo.db.Exec(ctx, "UPDATE mentees SET balance = $1 WHERE id = $2", balance, id)
	if err != nil {
		zap.L().Error("can't update mentee balance", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Mentee, error) {
	var m domain.Mentee
	err := repo.db.QueryRow(ctx, query, args...).Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.Balance, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find mentee", zap.Error(err))
		return nil, err
	}
	return &m, nil
}
