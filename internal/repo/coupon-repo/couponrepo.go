package couponrepo

import (
	"context"
	"errors"
	"time"

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

func (repo *Repository) Create(ctx context.Context, c *domain.Coupon) error {
	query := `
		INSERT INTO coupons (code, amount, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := repo.db.Exec(ctx, query, c.Code, c.Amount, c.ExpiresAt, c.CreatedAt)
	if err != nil {
		zap.L().Error("can't save coupon", zap.String("code", c.Code), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByCodeForUpdate(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `
		SELECT code, amount, expires_at, is_used, used_by, used_at, created_at
		FROM coupons
		WHERE code = $1
		FOR UPDATE
	`
	var c domain.Coupon
	err := repo.db.QueryRow(ctx, query, code).
		Scan(&c.Code, &c.Amount, &c.ExpiresAt, &c.IsUsed, &c.UsedBy, &c.UsedAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find coupon", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (repo *Repository) MarkUsed(ctx context.Context, code, userID string, at time.Time) error {
	query := `
		UPDATE coupons
		SET is_used = TRUE, used_by = $1, used_at = $2
		WHERE code = $3
	`
	_, err := repo.db.Exec(ctx, query, userID, at, code)
	if err != nil {
		zap.L().Error("can't mark coupon used", zap.String("code", code), zap.Error(err))
		return err
	}
	return nil
}
