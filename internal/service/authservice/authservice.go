package authservice

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/domain"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

const minPasswordLength = 8

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Mentee, error)
	Create(ctx context.Context, mentee *domain.Mentee) (*domain.Mentee, error)
}

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRegistration = errors.New("name, a valid email and a password of at least 8 characters are required")
)

type Service struct {
	menteeRepo  Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	adminEmails map[string]struct{}
	tokenTTL    time.Duration
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, adminEmails []string, tokenTTL time.Duration) *Service {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if email = normalizeEmail(email); email != "" {
			admins[email] = struct{}{}
		}
	}
	return &Service{
		menteeRepo:  repo,
		hashService: hashService,
		jwtService:  jwtService,
		adminEmails: admins,
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.Mentee, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || len(password) < minPasswordLength {
		return nil, ErrInvalidRegistration
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidRegistration
	}

	existing, err := s.menteeRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find mentee", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	mentee, err := s.menteeRepo.Create(ctx, &domain.Mentee{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		zap.L().Error("can't create mentee", zap.Error(err))
		return nil, err
	}

	zap.L().Info("mentee registered", zap.String("mentee_id", mentee.ID))
	return mentee, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Mentee, error) {
	email = normalizeEmail(email)
	mentee, err := s.menteeRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find mentee", zap.Error(err))
		return nil, err
	}
	if mentee == nil || !mentee.IsActive || !s.hashService.ComparePassword(mentee.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	return mentee, nil
}

// GenerateToken issues a bearer token; the admin role is granted by email.
func (s *Service) GenerateToken(mentee *domain.Mentee) (string, error) {
	token, err := s.jwtService.GenerateJWT(mentee.ID, s.RoleFor(mentee.Email), s.now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) RoleFor(email string) auth.Role {
	if _, ok := s.adminEmails[normalizeEmail(email)]; ok {
		return auth.RoleAdmin
	}
	return auth.RoleMentee
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
