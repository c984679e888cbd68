package mentorrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
)

const columns = "id, name, is_active, total_sessions, rating_avg, rating_count, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, mentor *domain.Mentor) (*domain.Mentor, error) {
	query := `
		INSERT INTO mentors (id, name, is_active, total_sessions, rating_avg, rating_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := repo.db.Exec(ctx, query, mentor.ID, mentor.Name, mentor.IsActive, mentor.TotalSessions, mentor.RatingAvg, mentor.RatingCount, mentor.CreatedAt)
	if err != nil {
		zap.L().Error("can't save mentor", zap.Error(err))
		return nil, err
	}
	return mentor, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Mentor, error) {
	return repo.findOne(ctx, "SELECT "+columns+" FROM mentors WHERE id = $1", id)
}

func (repo *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Mentor, error) {
	return repo.findOne(ctx, "SELECT "+columns+" FROM mentors WHERE id = $1 FOR UPDATE", id)
}

func (repo *Repository) IncrementTotalSessions(ctx context.Context, id string, n int) error {
	_, err := repo.db.Exec(ctx, "UPDATE mentors SET total_sessions = total_sessions + $1 WHERE id = $2", n, id)
	if err != nil {
		zap.L().Error("can't increment mentor sessions", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Mentor, error) {
	var m domain.Mentor
	err := repo.db.QueryRow(ctx, query, args...).Scan(&m.ID, &m.Name, &m.IsActive, &m.TotalSessions, &m.RatingAvg, &m.RatingCount, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find mentor", zap.Error(err))
		return nil, err
	}
	return &m, nil
}
