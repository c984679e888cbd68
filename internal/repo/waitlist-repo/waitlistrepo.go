package waitlistrepo

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

// Add reports false when the contact is already waiting for the session and
// then overwrites e with the stored entry.
func (repo *Repository) Add(ctx context.Context, e *domain.WaitlistEntry) (bool, error) {
	query := `
		INSERT INTO waitlist_entries (session_id, contact_id, mentee_id, phone, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, contact_id) DO UPDATE SET contact_id = EXCLUDED.contact_id
		RETURNING mentee_id, phone, joined_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err := repo.db.QueryRow(ctx, query, e.SessionID, e.ContactID, e.MenteeID, e.Phone, e.JoinedAt).
		Scan(&e.MenteeID, &e.Phone, &e.JoinedAt, &inserted)
	if err != nil {
		zap.L().Error("can't add waitlist entry", zap.String("session_id", e.SessionID), zap.Error(err))
		return false, err
	}
	return inserted, nil
}

func (repo *Repository) FindBySessionID(ctx context.Context, sessionID string) ([]domain.WaitlistEntry, error) {
	query := `
		SELECT session_id, contact_id, mentee_id, phone, joined_at
		FROM waitlist_entries
		WHERE session_id = $1
		ORDER BY joined_at ASC
	`
	rows, err := repo.db.Query(ctx, query, sessionID)
	if err != nil {
		zap.L().Error("can't get waitlist", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WaitlistEntry
	for rows.Next() {
		var e domain.WaitlistEntry
		if err := rows.Scan(&e.SessionID, &e.ContactID, &e.MenteeID, &e.Phone, &e.JoinedAt); err != nil {
			zap.L().Error("can't scan waitlist row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
