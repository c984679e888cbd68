package sessionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
)

const columns = "id, mentor_id, title, session_fee, capacity, booked_by, status, scheduled_at, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	query := `
		INSERT INTO sessions (id, mentor_id, title, session_fee, capacity, booked_by, status, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	bookedBy := session.BookedBy
	if bookedBy == nil {
		bookedBy = []string{}
	}
	_, err := repo.db.Exec(ctx, query,
		session.ID, session.MentorID, session.Title, session.SessionFee, session.Capacity,
		bookedBy, session.Status, session.ScheduledAt, session.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	return repo.findOne(ctx, "SELECT "+columns+" FROM sessions WHERE id = $1", id)
}

// FindByIDForUpdate locks the session row. Every booking-side write to a
// session goes through this lock first.
func (repo *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Session, error) {
	return repo.findOne(ctx, "SELECT "+columns+" FROM sessions WHERE id = $1 FOR UPDATE", id)
}

func (repo *Repository) FindScheduled(ctx context.Context) ([]domain.Session, error) {
	query := `
		SELECT ` + columns + `
		FROM sessions
		WHERE status = 'scheduled'
		ORDER BY scheduled_at ASC
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get scheduled sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.MentorID, &s.Title, &s.SessionFee, &s.Capacity, &s.BookedBy, &s.Status, &s.ScheduledAt, &s.CreatedAt); err != nil {
			zap.L().Error("can't scan session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (repo *Repository) AddBookedMentee(ctx context.Context, sessionID, menteeID string) error {
	_, err := repo.db.Exec(ctx, "UPDATE sessions SET booked_by = array_append(booked_by, $1) WHERE id = $2", menteeID, sessionID)
	if err != nil {
		zap.L().Error("can't add booked mentee", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) RemoveBookedMentee(ctx context.Context, sessionID, menteeID string) error {
	_, err := repo.db.Exec(ctx, "UPDATE sessions SET booked_by = array_remove(booked_by, $1) WHERE id = $2", menteeID, sessionID)
	if err != nil {
		zap.L().Error("can't remove booked mentee", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error {
	_, err := repo.db.Exec(ctx, "UPDATE sessions SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		zap.L().Error("can't update session status", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Session, error) {
	var s domain.Session
	err := repo.db.QueryRow(ctx, query, args...).Scan(&s.ID, &s.MentorID, &s.Title, &s.SessionFee, &s.Capacity, &s.BookedBy, &s.Status, &s.ScheduledAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
