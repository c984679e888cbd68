package waitlistservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
)

//go:generate mockgen -source=waitlistservice.go -destination=mock_waitlistservice.go -package=waitlistservice

type SessionRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Session, error)
}

type WaitlistRepo interface {
	// Add stores entry, or fills it from the existing row and returns false.
	Add(ctx context.Context, entry *domain.WaitlistEntry) (bool, error)
	FindBySessionID(ctx context.Context, sessionID string) ([]domain.WaitlistEntry, error)
}

type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrPhoneRequired   = errors.New("phone number is required to join the waitlist")
)

// Contact identifies who is waiting. MenteeID is empty for guests.
type Contact struct {
	MenteeID string
	Phone    string
}

type Service struct {
	sessionRepo  SessionRepo
	waitlistRepo WaitlistRepo
	notifier     Notifier
	now          func() time.Time
}

func New(sessionRepo SessionRepo, waitlistRepo WaitlistRepo, notifier Notifier) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		waitlistRepo: waitlistRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

// JoinWaitlist records interest in a session. It never touches balances or
// seats, and joining again with the same contact changes nothing.
func (s *Service) JoinWaitlist(ctx context.Context, sessionID string, contact Contact) (*domain.WaitlistEntry, error) {
	phone := normalizePhone(contact.Phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to get session", zap.Error(err))
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	entry := &domain.WaitlistEntry{
		SessionID: sessionID,
		ContactID: contactID(contact.MenteeID, phone),
		MenteeID:  contact.MenteeID,
		Phone:     phone,
		JoinedAt:  s.now(),
	}
	added, err := s.waitlistRepo.Add(ctx, entry)
	if err != nil {
		zap.L().Error("failed to join waitlist", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	if !added {
		zap.L().Debug("contact already on waitlist", zap.String("session_id", sessionID), zap.String("contact_id", entry.ContactID))
		return entry, nil
	}

	zap.L().Info("waitlist joined",
		zap.String("session_id", sessionID),
		zap.String("contact_id", entry.ContactID),
		zap.Bool("guest", entry.IsGuest()),
	)
	s.notifier.Notify(ctx, domain.Event{
		Type:       domain.EventWaitlistJoined,
		UserID:     contact.MenteeID,
		SessionID:  sessionID,
		Phone:      phone,
		OccurredAt: entry.JoinedAt,
	})
	return entry, nil
}

func (s *Service) GetWaitlist(ctx context.Context, sessionID string) ([]domain.WaitlistEntry, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to get session", zap.Error(err))
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	entries, err := s.waitlistRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to get waitlist", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// contactID is stable per guest phone so a guest who asks twice is stored once.
func contactID(menteeID, phone string) string {
	if menteeID != "" {
		return menteeID
	}
	return "guest-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(phone)).String()
}

func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '+':
			return r
		default:
			return -1
		}
	}, phone)
}
